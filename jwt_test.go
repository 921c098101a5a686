package main

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestJWT_RoundTrip(t *testing.T) {
	uid := primitive.NewObjectID()
	tok, err := signJWT("secret", uid)
	if err != nil {
		t.Fatalf("signJWT: %v", err)
	}

	got, err := parseJWT("secret", tok)
	if err != nil {
		t.Fatalf("parseJWT: %v", err)
	}
	if got != uid {
		t.Errorf("subject = %s, want %s", got.Hex(), uid.Hex())
	}
}

func TestJWT_WrongSecretRejected(t *testing.T) {
	tok, err := signJWT("secret", primitive.NewObjectID())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := parseJWT("other", tok); err == nil {
		t.Error("token validated with the wrong secret")
	}
}

func TestJWT_GarbageRejected(t *testing.T) {
	if _, err := parseJWT("secret", "not.a.token"); err == nil {
		t.Error("garbage token validated")
	}
}
