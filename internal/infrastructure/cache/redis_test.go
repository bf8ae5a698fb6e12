package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestOpenRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	r, err := OpenRedis(mr.Addr(), "", 0)
	if err != nil {
		t.Fatalf("OpenRedis: %v", err)
	}
	defer r.Close()

	if err := r.Set(context.Background(), "k", "v", 0).Err(); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := r.Get(context.Background(), "k").Result()
	if err != nil || got != "v" {
		t.Fatalf("get = %q, %v", got, err)
	}
}

func TestOpenRedis_Unreachable(t *testing.T) {
	if _, err := OpenRedis("127.0.0.1:1", "", 0); err == nil {
		t.Fatal("expected connection error")
	}
}

func TestOpenRedis_WrongPassword(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.RequireAuth("topsecret")

	if _, err := OpenRedis(mr.Addr(), "wrong", 0); err == nil {
		t.Fatal("expected auth error")
	}
	if _, err := OpenRedis(mr.Addr(), "topsecret", 0); err != nil {
		t.Fatalf("auth with correct password: %v", err)
	}
}
