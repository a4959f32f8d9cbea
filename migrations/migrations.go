package migrations

import (
	"database/sql"
	"time"
)

func execWithRetry(db *sql.DB, query string, retries int) error {
	_, err := db.Exec(query)
	if err != nil {
		// Retry creating the table
		for i := 0; i < retries; i++ {
			time.Sleep(1 * time.Second)
			_, err = db.Exec(query)
			if err == nil {
				break
			}
		}
	}
	return err
}

// AutoMigrateUsers creates the users table if it does not exist.
func AutoMigrateUsers(retries int, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id INT AUTO_INCREMENT PRIMARY KEY,
			username VARCHAR(50) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			cash DECIMAL(18,2) NOT NULL
		);
	`
	return execWithRetry(db, query, retries)
}

// AutoMigrateHoldings creates the holdings table if it does not exist.
// The (user_id, symbol) unique key is what the buy upsert relies on.
func AutoMigrateHoldings(retries int, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS holdings (
			id INT AUTO_INCREMENT PRIMARY KEY,
			user_id INT NOT NULL,
			symbol VARCHAR(10) NOT NULL,
			shares INT NOT NULL,
			UNIQUE KEY user_symbol_idx (user_id, symbol),
			FOREIGN KEY (user_id) REFERENCES users(id)
		);
	`
	return execWithRetry(db, query, retries)
}

// AutoMigrateTransactions creates the transactions table if it does not exist.
func AutoMigrateTransactions(retries int, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS transactions (
			id INT AUTO_INCREMENT PRIMARY KEY,
			user_id INT NOT NULL,
			transaction_type VARCHAR(10) NOT NULL,
			symbol VARCHAR(10) NOT NULL,
			price DECIMAL(18,4) NOT NULL,
			shares INT NOT NULL,
			total DECIMAL(18,2) NOT NULL,
			reference VARCHAR(36) NOT NULL,
			transacted DATETIME NOT NULL,
			FOREIGN KEY (user_id) REFERENCES users(id)
		);
	`
	return execWithRetry(db, query, retries)
}
