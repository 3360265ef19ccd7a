package main

import (
	"flag"
	"log"

	"contactdesk/pkg/backend"
	"contactdesk/pkg/config"
	"contactdesk/store"
)

// Out-of-band maintenance: message deletion is deliberately not exposed over
// HTTP, so removing spam or fulfilling an erasure request happens here.
func main() {
	id := flag.Uint("id", 0, "message id to delete (its replies cascade)")
	flag.Parse()

	if *id == 0 {
		log.Fatal("usage: maintenance -id <message-id>")
	}

	be, err := backend.Select(config.DatabaseURL, config.SQLitePath)
	if err != nil {
		log.Fatalf("failed to initialize storage backend: %v", err)
	}
	log.Printf("[maintenance] using %s backend", be.Kind)

	if err := store.NewMessages(be).Delete(uint(*id)); err != nil {
		log.Fatalf("delete failed: %v", err)
	}
	log.Printf("[maintenance] message %d deleted", *id)
}
