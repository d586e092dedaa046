// Package store provides SQLite persistence for scraped job posts, user lists and saved jobs.
// It uses sqlx over the pure-go modernc driver with WAL mode and foreign keys enabled
// on every connection.
package store
