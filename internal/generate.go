package internal

// The ent client is generated into internal/repo and is not committed.

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target ./repo ./schema
