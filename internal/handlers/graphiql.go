package handlers

const graphiqlPage = `<!DOCTYPE html>
<html>
	<head>
		<title>Event Booking GraphQL</title>
		<style>
			body { height: 100%; margin: 0; width: 100%; overflow: hidden; }
			#graphiql { height: 100vh; }
		</style>
		<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/graphiql@3/graphiql.min.css" />
	</head>
	<body>
		<div id="graphiql">Loading...</div>
		<script src="https://cdn.jsdelivr.net/npm/react@18/umd/react.production.min.js"></script>
		<script src="https://cdn.jsdelivr.net/npm/react-dom@18/umd/react-dom.production.min.js"></script>
		<script src="https://cdn.jsdelivr.net/npm/graphiql@3/graphiql.min.js"></script>
		<script>
			const fetcher = GraphiQL.createFetcher({ url: '/graphql' });
			ReactDOM.createRoot(document.getElementById('graphiql')).render(
				React.createElement(GraphiQL, { fetcher: fetcher })
			);
		</script>
	</body>
</html>
`
