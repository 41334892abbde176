// Copyright 2024 the driftsim authors
// This file is part of driftsim, a neutral genetic drift simulator.
//
// driftsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// driftsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with driftsim. If not, see <http://www.gnu.org/licenses/>.

package utils

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// Printer is one sink for rendered simulation results. Print flushes the
// current data of the wrapped producer; Close releases the sink's resources.
type Printer interface {
	Print() error
	Close() error
}

// Printers fans a Print call out to a group of sinks.
type Printers struct {
	printers []Printer
}

// NewPrinters creates an empty printer group.
func NewPrinters() *Printers {
	return &Printers{}
}

// AddPrinter appends a sink to the group.
func (ps *Printers) AddPrinter(p Printer) *Printers {
	ps.printers = append(ps.printers, p)
	return ps
}

// Print flushes all sinks in insertion order, stopping at the first failure.
func (ps *Printers) Print() error {
	for _, p := range ps.printers {
		if err := p.Print(); err != nil {
			return err
		}
	}
	return nil
}

// Close closes all sinks and joins their errors.
func (ps *Printers) Close() error {
	var err error
	for _, p := range ps.printers {
		err = errors.Join(err, p.Close())
	}
	return err
}

// PrinterToWriter writes the producer's string to an io.Writer.
type PrinterToWriter struct {
	w io.Writer
	f func() string
}

// NewPrinterToWriter wraps f; its result is written on every Print.
func NewPrinterToWriter(w io.Writer, f func() string) *PrinterToWriter {
	return &PrinterToWriter{w: w, f: f}
}

func (p *PrinterToWriter) Print() error {
	_, err := fmt.Fprint(p.w, p.f())
	return err
}

func (p *PrinterToWriter) Close() error {
	return nil
}

// AddPrinterToWriter appends a writer sink to the group.
func (ps *Printers) AddPrinterToWriter(w io.Writer, f func() string) *Printers {
	return ps.AddPrinter(NewPrinterToWriter(w, f))
}

// PrinterToFile writes the producer's string to a file, replacing previous
// content on every Print.
type PrinterToFile struct {
	path string
	f    func() string
}

// NewPrinterToFile wraps f; its result is written to path on every Print.
func NewPrinterToFile(path string, f func() string) *PrinterToFile {
	return &PrinterToFile{path: path, f: f}
}

func (p *PrinterToFile) Print() (err error) {
	file, err := os.Create(p.path)
	if err != nil {
		return fmt.Errorf("unable to print to file %s; %v", p.path, err)
	}
	defer func(file *os.File) {
		err = errors.Join(err, file.Close())
	}(file)
	_, err = file.WriteString(p.f())
	return err
}

func (p *PrinterToFile) Close() error {
	return nil
}

// AddPrinterToFile appends a file sink to the group; an empty path is a
// disabled sink and is skipped.
func (ps *Printers) AddPrinterToFile(path string, f func() string) *Printers {
	if path != "" {
		ps.AddPrinter(NewPrinterToFile(path, f))
	}
	return ps
}

// PrinterToDb inserts the producer's value tuples into a database. The
// producer is re-evaluated on every Print.
type PrinterToDb struct {
	db     *sql.DB
	insert string
	f      func() [][]any
}

func (p *PrinterToDb) Print() (err error) {
	// a transaction makes the bulk insert a single write
	tx, err := p.db.Begin()
	if err != nil {
		return fmt.Errorf("unable to begin a transaction; %v", err)
	}
	stmt, err := tx.Prepare(p.insert)
	if err != nil {
		err = fmt.Errorf("unable to prepare statement %s; %v", p.insert, err)
		return errors.Join(err, tx.Rollback())
	}
	defer func(stmt *sql.Stmt) {
		err = errors.Join(err, stmt.Close())
	}(stmt)
	for _, values := range p.f() {
		if _, err := stmt.Exec(values...); err != nil {
			return errors.Join(err, tx.Rollback())
		}
	}
	return tx.Commit()
}

func (p *PrinterToDb) Close() error {
	return p.db.Close()
}

// NewPrinterToSqlite3 opens (or creates) a sqlite3 database at conn, applies
// the create statement, and returns a sink inserting the producer's tuples
// with the insert statement.
func NewPrinterToSqlite3(conn string, create string, insert string, f func() [][]any) (*PrinterToDb, error) {
	db, err := sql.Open("sqlite3", conn)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection to sqlite3 %s; %v", conn, err)
	}
	if _, err = db.Exec(create); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to create table on %s; %v", conn, err), db.Close())
	}
	return &PrinterToDb{db: db, insert: insert, f: f}, nil
}
