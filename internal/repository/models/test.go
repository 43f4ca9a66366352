package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringSlice stores an ordered list of strings as a JSON array column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, s)
}

// Test is one persisted authored test.
type Test struct {
	ID        string    `db:"id"`
	Theme     string    `db:"theme"`
	Level     string    `db:"level"`
	CreatedAt time.Time `db:"created_at"`
}

func (Test) TableName() string {
	return "tests"
}

// Question is one persisted question of a test. Position preserves the
// authoring order; Answers keeps the presentation order the correct answer
// was selected against.
type Question struct {
	ID            string      `db:"id"`
	TestID        string      `db:"test_id"`
	Position      int         `db:"position"`
	Text          string      `db:"text"`
	Answers       StringSlice `db:"answers"`
	CorrectAnswer string      `db:"correct_answer"`
	CreatedAt     time.Time   `db:"created_at"`
}

func (Question) TableName() string {
	return "questions"
}
