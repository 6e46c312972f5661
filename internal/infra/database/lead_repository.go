package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/lead-engine/internal/entity"
)

// LeadRepository é o dono da tabela leads. Schema relevante:
//
//	leads(id BIGSERIAL PK, source, source_id, name, email, phone,
//	      username, bio, notes, messages_json, comments_json,
//	      score, tier, score_breakdown, status, raw_data,
//	      version, created_at, updated_at,
//	      UNIQUE(source, source_id))
//	lead_audit(id UUID PK, lead_id, kind, content, created_at)
type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `
	id, source, source_id, name, email, phone, username,
	bio, notes, messages_json, comments_json,
	score, tier, score_breakdown, status, raw_data,
	version, created_at, updated_at
`

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (
			source, source_id, name, email, phone, username,
			bio, notes, messages_json, comments_json,
			score, tier, score_breakdown, status, raw_data,
			version, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, 1, $16, $17)
		RETURNING id, version
	`

	breakdown, err := marshalBreakdown(lead.ScoreBreakdown)
	if err != nil {
		return err
	}

	err = r.DB.QueryRowContext(ctx, query,
		lead.Source,
		nullString(lead.SourceID),
		nullString(lead.Name),
		nullString(lead.Email),
		nullString(lead.Phone),
		nullString(lead.Username),
		nullString(lead.Bio),
		nullString(lead.Notes),
		marshalStrings(lead.Messages),
		marshalStrings(lead.Comments),
		lead.Score,
		lead.Tier,
		breakdown,
		lead.Status,
		nullString(lead.RawData),
		lead.CreatedAt,
		lead.UpdatedAt,
	).Scan(&lead.ID, &lead.Version)

	if err != nil {
		log.Printf("❌ Erro ao inserir lead (source=%s): %v", lead.Source, err)
		return err
	}

	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id int64) (*entity.Lead, error) {
	return r.findOne(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id)
}

func (r *LeadRepository) FindBySourceID(ctx context.Context, source, sourceID string) (*entity.Lead, error) {
	return r.findOne(ctx,
		`SELECT `+leadColumns+` FROM leads WHERE source = $1 AND source_id = $2`,
		source, sourceID)
}

func (r *LeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	return r.findOne(ctx,
		`SELECT `+leadColumns+` FROM leads WHERE LOWER(email) = LOWER($1)`,
		email)
}

// FindByPhoneSuffix compara os últimos 10 dígitos do telefone
// normalizado, tolerando código de país e pontuação.
func (r *LeadRepository) FindByPhoneSuffix(ctx context.Context, suffix string) (*entity.Lead, error) {
	return r.findOne(ctx,
		`SELECT `+leadColumns+` FROM leads
		 WHERE RIGHT(regexp_replace(COALESCE(phone, ''), '\D', '', 'g'), 10) = $1`,
		suffix)
}

func (r *LeadRepository) FindByUsername(ctx context.Context, username, source string) (*entity.Lead, error) {
	return r.findOne(ctx,
		`SELECT `+leadColumns+` FROM leads WHERE LOWER(username) = LOWER($1) AND source = $2`,
		username, source)
}

// Update grava a cópia completa do lead com check otimista de versão.
// Zero linhas afetadas vira entity.ErrLeadNotFound (deleção concorrente)
// ou entity.ErrVersionConflict (outra escrita ganhou a corrida).
func (r *LeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	query := `
		UPDATE leads SET
			source_id = $1, name = $2, email = $3, phone = $4, username = $5,
			bio = $6, notes = $7, messages_json = $8, comments_json = $9,
			score = $10, tier = $11, score_breakdown = $12, status = $13,
			version = version + 1, updated_at = NOW()
		WHERE id = $14 AND version = $15
		RETURNING version, updated_at
	`

	breakdown, err := marshalBreakdown(lead.ScoreBreakdown)
	if err != nil {
		return err
	}

	err = r.DB.QueryRowContext(ctx, query,
		nullString(lead.SourceID),
		nullString(lead.Name),
		nullString(lead.Email),
		nullString(lead.Phone),
		nullString(lead.Username),
		nullString(lead.Bio),
		nullString(lead.Notes),
		marshalStrings(lead.Messages),
		marshalStrings(lead.Comments),
		lead.Score,
		lead.Tier,
		breakdown,
		lead.Status,
		lead.ID,
		lead.Version,
	).Scan(&lead.Version, &lead.UpdatedAt)

	if err == sql.ErrNoRows {
		// Distingue alvo deletado de corrida de versão.
		var exists bool
		checkErr := r.DB.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM leads WHERE id = $1)`, lead.ID).Scan(&exists)
		if checkErr != nil {
			return checkErr
		}
		if exists {
			return entity.ErrVersionConflict
		}
		return entity.ErrLeadNotFound
	}

	return err
}

// UpdateScore grava só score/tier. O rescoring worker chama apenas
// quando o valor mudou, para não gerar churn de updated_at.
func (r *LeadRepository) UpdateScore(ctx context.Context, id int64, score int, tier string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE leads SET score = $1, tier = $2, updated_at = NOW() WHERE id = $3`,
		score, tier, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

func (r *LeadRepository) RecordAudit(ctx context.Context, leadID int64, kind, content string) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO lead_audit (id, lead_id, kind, content, created_at)
		 VALUES ($1, $2, $3, $4, NOW())`,
		uuid.New().String(), leadID, kind, content)
	return err
}

func (r *LeadRepository) findOne(ctx context.Context, query string, args ...interface{}) (*entity.Lead, error) {
	row := r.DB.QueryRowContext(ctx, query, args...)

	var lead entity.Lead
	var sourceID, name, email, phone, username sql.NullString
	var bio, notes, messagesJSON, commentsJSON sql.NullString
	var breakdownJSON, rawData sql.NullString
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&lead.ID, &lead.Source, &sourceID, &name, &email, &phone, &username,
		&bio, &notes, &messagesJSON, &commentsJSON,
		&lead.Score, &lead.Tier, &breakdownJSON, &lead.Status, &rawData,
		&lead.Version, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil // ausência não é erro
	}
	if err != nil {
		return nil, err
	}

	lead.SourceID = sourceID.String
	lead.Name = name.String
	lead.Email = email.String
	lead.Phone = phone.String
	lead.Username = username.String
	lead.Bio = bio.String
	lead.Notes = notes.String
	lead.RawData = rawData.String
	lead.CreatedAt = createdAt
	lead.UpdatedAt = updatedAt

	if messagesJSON.Valid {
		if err := json.Unmarshal([]byte(messagesJSON.String), &lead.Messages); err != nil {
			log.Printf("⚠️ messages_json podre no lead %d: %v", lead.ID, err)
		}
	}
	if commentsJSON.Valid {
		if err := json.Unmarshal([]byte(commentsJSON.String), &lead.Comments); err != nil {
			log.Printf("⚠️ comments_json podre no lead %d: %v", lead.ID, err)
		}
	}
	if breakdownJSON.Valid {
		var breakdown entity.ScoreBreakdown
		if err := json.Unmarshal([]byte(breakdownJSON.String), &breakdown); err != nil {
			log.Printf("⚠️ score_breakdown podre no lead %d: %v", lead.ID, err)
		} else {
			lead.ScoreBreakdown = &breakdown
		}
	}

	return &lead, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func marshalStrings(items []string) *string {
	if len(items) == 0 {
		return nil
	}
	data, _ := json.Marshal(items)
	s := string(data)
	return &s
}

func marshalBreakdown(b *entity.ScoreBreakdown) (*string, error) {
	if b == nil {
		return nil, nil
	}
	data, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}
	s := string(data)
	return &s, nil
}
