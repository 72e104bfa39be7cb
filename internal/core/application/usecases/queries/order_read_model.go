package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// orderSelectColumns is the column list every order read model scans.
// Keep in sync with scanOrderRow.
const orderSelectColumns = `
	id,
	customer_id,
	tailor_id,
	assignment,
	status,
	item_type,
	measurements,
	fabric_source,
	fabric_name,
	notes,
	expected_delivery,
	total_amount,
	created_at,
	started_at,
	version
`

// scanOrderRow converts one orders row into the read model, decoding the
// jsonb payload columns and deriving urgency as of now.
func scanOrderRow(rows *sql.Rows, now time.Time) (OrderResponse, error) {
	var (
		resp             OrderResponse
		id, customerID   uuid.UUID
		tailorID         uuid.NullUUID
		assignment       int
		status           int
		measurementsJSON []byte
		fabricName       sql.NullString
		notesJSON        []byte
		startedAt        sql.NullTime
	)

	if err := rows.Scan(
		&id,
		&customerID,
		&tailorID,
		&assignment,
		&status,
		&resp.ItemType,
		&measurementsJSON,
		&resp.FabricSource,
		&fabricName,
		&notesJSON,
		&resp.ExpectedDelivery,
		&resp.TotalAmount,
		&resp.CreatedAt,
		&startedAt,
		&resp.Version,
	); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID

	ownerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.CustomerID = ownerID

	if tailorID.Valid {
		assignedID, idErr := kernel.UUIDFromBytes(tailorID.UUID[:])
		if idErr != nil {
			return OrderResponse{}, idErr
		}
		resp.TailorID = &assignedID
	}

	resp.Status = order.Status(status).String()
	resp.Assignment = order.AssignmentState(assignment).String()

	if len(measurementsJSON) > 0 {
		if err = json.Unmarshal(measurementsJSON, &resp.Measurements); err != nil {
			return OrderResponse{}, err
		}
	}
	if len(notesJSON) > 0 {
		if err = json.Unmarshal(notesJSON, &resp.Notes); err != nil {
			return OrderResponse{}, err
		}
	}
	if resp.Notes == nil {
		resp.Notes = []NoteResponse{}
	}

	if fabricName.Valid {
		resp.FabricName = fabricName.String
	}
	if startedAt.Valid {
		t := startedAt.Time
		resp.StartedAt = &t
	}

	resp.Urgency = order.ClassifyUrgency(resp.ExpectedDelivery, now).String()

	return resp, nil
}
