// Package pb holds the messages exchanged with the world actor, also used
// as the record format of snapshot recordings.
package pb

//go:generate protoc -I.. --go_out=.. --go_opt=paths=source_relative ../pb/flock.proto
