package graph

// Schema is the GraphQL schema served at the /graphql endpoint.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	scalar Time
	scalar Price

	type Query {
		events: [Event!]!
	}

	type Mutation {
		createEvent(eventInput: EventInput!): Event!
		createUser(userInput: UserInput!): User!
	}

	type Event {
		id: ID!
		title: String!
		description: String!
		price: Price!
		creator: ID!
		createdAt: Time!
	}

	input EventInput {
		title: String!
		description: String!
		price: Price!
	}

	type User {
		id: ID!
		email: String!
		password: String
		createdEvents: [ID!]!
		createdAt: Time!
	}

	input UserInput {
		email: String!
		password: String!
	}
`
