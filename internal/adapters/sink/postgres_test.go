package sink

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/ghalamif/PacketFlow/internal/domain"
)

func TestPostgresSinkConsume(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	s := NewPostgresSink(db, "packets")

	pkt := domain.Packet{
		Payload:            []byte("abc123"),
		Size:               6,
		EventID:            9,
		EventCorrelationID: "corr-1",
	}

	expectedQuery := regexp.QuoteMeta("INSERT INTO packets (event_id, correlation_id, size, payload, received_at) VALUES ($1,$2,$3,$4,$5) ON CONFLICT (event_id) DO NOTHING")
	mock.ExpectExec(expectedQuery).
		WithArgs(uint64(9), "corr-1", 6, []byte("abc123"), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := s.Consume(pkt); err != nil {
		t.Fatalf("consume: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresSinkConsumeTruncatesToSize(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	s := NewPostgresSink(db, "packets")

	// Declared size smaller than the allocated buffer; only the logical
	// prefix must be stored.
	pkt := domain.Packet{
		Payload:            []byte("abcdef\x00\x00"),
		Size:               6,
		EventID:            10,
		EventCorrelationID: "corr-2",
	}

	mock.ExpectExec("INSERT INTO packets").
		WithArgs(uint64(10), "corr-2", 6, []byte("abcdef"), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := s.Consume(pkt); err != nil {
		t.Fatalf("consume: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresSinkSkipsEmptyPacket(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	s := NewPostgresSink(db, "packets")
	if err := s.Consume(domain.Packet{}); err != nil {
		t.Fatalf("expected nil error for empty packet, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresSinkName(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	s := NewPostgresSink(db, "packets")
	if s.Name() != "postgres" {
		t.Fatalf("expected sink name postgres, got %s", s.Name())
	}
}
