package sink

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ghalamif/PacketFlow/internal/domain"
	"github.com/ghalamif/PacketFlow/internal/ports"
)

// PostgresSink archives consumed payloads into a table. The insert is
// idempotent on event_id so a replayed packet never produces a duplicate row.
type PostgresSink struct {
	db        *sql.DB
	tableName string
}

func NewPostgresSink(db *sql.DB, table string) *PostgresSink {
	return &PostgresSink{db: db, tableName: table}
}

func (p *PostgresSink) Name() string { return "postgres" }

func (p *PostgresSink) Consume(pkt domain.Packet) error {
	if !pkt.HasData() {
		return nil
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (event_id, correlation_id, size, payload, received_at) VALUES ($1,$2,$3,$4,$5) ON CONFLICT (event_id) DO NOTHING",
		p.tableName,
	)

	_, err := p.db.Exec(query,
		pkt.EventID,
		pkt.EventCorrelationID,
		pkt.Size,
		pkt.Payload[:pkt.Size],
		time.Now().UTC(),
	)
	return err
}

var _ ports.Sink = (*PostgresSink)(nil)
