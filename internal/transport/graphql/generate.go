// Package graphql provides the GraphQL transport layer for the CreatorPulse
// backend. It defines the schema, resolvers, and error handling for the
// creator monetization and audience insight API. Scalar types (UUID,
// DateTime, JSON) and GraphQL types are generated via gqlgen from the
// schema file.
package graphql

//go:generate go run github.com/99designs/gqlgen generate
