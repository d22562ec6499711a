package redis

import (
	"context"
	"testing"

	"github.com/go-redis/redismock/v9"
)

func TestViewCounter_Increment(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	counter := NewViewCounter(rdb)

	mock.ExpectIncr("paper:views:paper-1").SetVal(3)

	n, err := counter.Increment(context.Background(), "paper-1")
	if err != nil {
		t.Fatalf("Increment() error = %v", err)
	}
	if n != 3 {
		t.Errorf("Increment() = %d, want 3", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestViewCounter_Get(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	counter := NewViewCounter(rdb)

	mock.ExpectGet("paper:views:paper-1").SetVal("7")

	n, err := counter.Get(context.Background(), "paper-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if n != 7 {
		t.Errorf("Get() = %d, want 7", n)
	}
}

func TestViewCounter_Get_NeverViewed(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	counter := NewViewCounter(rdb)

	mock.ExpectGet("paper:views:paper-9").RedisNil()

	n, err := counter.Get(context.Background(), "paper-9")
	if err != nil {
		t.Fatalf("Get() error = %v, want nil on a missing key", err)
	}
	if n != 0 {
		t.Errorf("Get() = %d, want 0", n)
	}
}
