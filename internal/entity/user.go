package entity

import "github.com/shopspring/decimal"

type User struct {
	ID           int             `json:"id"`
	Username     string          `json:"username"`
	PasswordHash string          `json:"-"`
	Cash         decimal.Decimal `json:"cash"`
}

/*
Mysql Schema:

CREATE TABLE users (
	id INT AUTO_INCREMENT PRIMARY KEY,
	username VARCHAR(50) NOT NULL,
	password_hash VARCHAR(255) NOT NULL,
	cash DECIMAL(18,2) NOT NULL
);

CREATE UNIQUE INDEX username_idx ON users(username);
*/
