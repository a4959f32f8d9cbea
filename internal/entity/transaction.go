package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TradeTypeBuy  = "buy"
	TradeTypeSell = "sell"
)

type Transaction struct {
	ID         int             `json:"id"`
	UserID     int             `json:"user_id"`
	Type       string          `json:"type"` // "buy" or "sell"
	Symbol     string          `json:"symbol"`
	Price      decimal.Decimal `json:"price"`
	Shares     int             `json:"shares"`
	Total      decimal.Decimal `json:"total"`
	Reference  string          `json:"reference"`
	Transacted time.Time       `json:"transacted"`
}

/*
Mysql Schema:

CREATE TABLE transactions (
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
*/
