package dummydb

import (
	"sync"

	"github.com/evaldez/assignment-tracker/core/assignment"
)

type (
	DB struct {
		assignment *assignmentTable
	}

	assignmentTable struct {
		sync.RWMutex
		table  map[int]*assignment.Assignment
		pkSeq  int
		failOn error // when set, every operation returns it
	}
)

func Open() (*DB, error) {
	db := &DB{
		assignment: &assignmentTable{table: make(map[int]*assignment.Assignment)},
	}
	return db, nil
}

// FailWith makes every following operation return `err` (nil resets it).
func (db *DB) FailWith(err error) {
	db.assignment.Lock()
	defer db.assignment.Unlock()
	db.assignment.failOn = err
}
