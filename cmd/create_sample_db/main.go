package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"

	_ "github.com/mattn/go-sqlite3"
)

var dbPath = flag.String("output", "movies.db", "Path of the SQLite file to create")

func main() {
	flag.Parse()

	db, err := sql.Open("sqlite3", *dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// Create the sample movie table used in the documentation
	_, err = db.Exec(`
		CREATE TABLE movies (title TEXT, year INTEGER, genre TEXT);
		INSERT INTO movies (title, year, genre) VALUES
			('The Matrix', 1999, 'Science Fiction'),
			('Spirited Away', 2001, 'Animation'),
			('Heat', 1995, 'Crime');
	`)
	if err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}

	fmt.Printf("Sample database created at %s\n", *dbPath)
}
