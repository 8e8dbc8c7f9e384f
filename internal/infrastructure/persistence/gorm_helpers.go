package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/errs"

	"gorm.io/gorm"
)

// translateError maps GORM errors onto the shared error kinds
func translateError(err error, resource, id string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NotFound(resource, id)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.Conflict("%s already exists", resource)
	default:
		return fmt.Errorf("failed to access %s: %w", resource, err)
	}
}

// findPage counts the rows matched by q, then loads one ordered page into dest
func findPage(q *gorm.DB, page common.Page, order string, dest interface{}) (int64, error) {
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, err
	}

	page.Normalize()
	if err := q.Order(order).Limit(page.Limit).Offset(page.Offset).Find(dest).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// containsPattern builds a case-insensitive LIKE pattern, escaping wildcards
func containsPattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(s)) + "%"
}

// jsonElementPattern matches a string element inside a JSON array column
func jsonElementPattern(value string) string {
	encoded, _ := json.Marshal(value)
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(string(encoded)) + "%"
}
