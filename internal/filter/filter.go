// Package filter turns sparse, user-supplied property filters into a
// read-only SQL predicate over the properties table (aliased "p").
//
// Every field is optional. Absent, zero or "any" values impose no constraint,
// present fields are combined with AND, and no combination is an error: an
// infeasible filter simply matches nothing.
package filter

import (
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/models"
)

// Any is the sentinel meaning "no constraint" for enumerated filters.
const Any = "any"

// Filters is the sparse filter record accepted by FilterProperties.
type Filters struct {
	// FavoriteIDs restricts the result to the given property IDs.
	FavoriteIDs []string

	// PriceMin and PriceMax are inclusive bounds on PricePerMonth.
	PriceMin float64
	PriceMax float64

	// Beds and Baths are minimums.
	Beds  int
	Baths float64

	SquareFeetMin int
	SquareFeetMax int

	// PropertyType must match exactly. Empty or Any means no constraint.
	PropertyType models.PropertyType

	// Amenities matches properties offering at least one of the listed amenities.
	Amenities []models.Amenity

	// AvailableFrom matches properties with a lease starting on or before it.
	AvailableFrom time.Time
}

// Predicate is a conjunction of SQL conditions with positional "?" arguments.
// The store rebinds placeholders for its driver.
type Predicate struct {
	clauses []clause
}

type clause struct {
	sql  string
	args []any
}

// Build converts filters into a predicate. It never fails.
func Build(f Filters) Predicate {
	var p Predicate

	if ids := nonEmpty(f.FavoriteIDs); len(ids) > 0 {
		p.add(in("p.id IN (?)", ids))
	}

	if f.PriceMin > 0 {
		p.add(clause{sql: "p.price_per_month >= ?", args: []any{f.PriceMin}})
	}
	if f.PriceMax > 0 {
		p.add(clause{sql: "p.price_per_month <= ?", args: []any{f.PriceMax}})
	}

	if f.Beds > 0 {
		p.add(clause{sql: "p.beds >= ?", args: []any{f.Beds}})
	}
	if f.Baths > 0 {
		p.add(clause{sql: "p.baths >= ?", args: []any{f.Baths}})
	}

	if f.SquareFeetMin > 0 {
		p.add(clause{sql: "p.square_feet >= ?", args: []any{f.SquareFeetMin}})
	}
	if f.SquareFeetMax > 0 {
		p.add(clause{sql: "p.square_feet <= ?", args: []any{f.SquareFeetMax}})
	}

	if f.PropertyType != "" && !strings.EqualFold(string(f.PropertyType), Any) {
		p.add(clause{sql: "p.property_type = ?", args: []any{string(f.PropertyType)}})
	}

	if amenities := amenityValues(f.Amenities); len(amenities) > 0 {
		p.add(in("EXISTS (SELECT 1 FROM property_amenities pa WHERE pa.property_id = p.id AND pa.amenity IN (?))", amenities))
	}

	if !f.AvailableFrom.IsZero() {
		p.add(clause{
			sql:  "EXISTS (SELECT 1 FROM leases l WHERE l.property_id = p.id AND l.start_date <= ?)",
			args: []any{f.AvailableFrom.Unix()},
		})
	}

	return p
}

// Empty reports whether the predicate imposes no constraint.
func (p Predicate) Empty() bool {
	return len(p.clauses) == 0
}

// Where renders the predicate as a WHERE body ("1 = 1" when empty) and its
// arguments in placeholder order.
func (p Predicate) Where() (string, []any) {
	if p.Empty() {
		return "1 = 1", nil
	}
	parts := make([]string, len(p.clauses))
	var args []any
	for i, c := range p.clauses {
		parts[i] = c.sql
		args = append(args, c.args...)
	}
	return strings.Join(parts, " AND "), args
}

func (p *Predicate) add(c clause) {
	p.clauses = append(p.clauses, c)
}

// in expands a single "(?)" placeholder over a non-empty slice.
func in(query string, values []string) clause {
	q, args, err := sqlx.In(query, values)
	if err != nil {
		// sqlx.In only rejects empty slices, which callers never pass.
		return clause{sql: "1 = 0"}
	}
	return clause{sql: q, args: args}
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// amenityValues returns nil when the list is empty or contains Any.
func amenityValues(amenities []models.Amenity) []string {
	var out []string
	for _, a := range amenities {
		s := strings.TrimSpace(string(a))
		if strings.EqualFold(s, Any) {
			return nil
		}
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ParseMinimum reads a "beds"/"baths" style value: a number or Any.
// Anything unparseable, negative or Any yields 0 (no constraint).
func ParseMinimum(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, Any) {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ParseDate reads an "availableFrom" value: an RFC 3339 timestamp, a
// YYYY-MM-DD date, or Any. Anything else yields the zero time (no constraint).
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, Any) {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t
	}
	return time.Time{}
}
