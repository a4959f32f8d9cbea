package entity

type Holding struct {
	ID     int    `json:"id"`
	UserID int    `json:"user_id"`
	Symbol string `json:"symbol"`
	Shares int    `json:"shares"`
}

/*
Mysql Schema:

CREATE TABLE holdings (
	id INT AUTO_INCREMENT PRIMARY KEY,
	user_id INT NOT NULL,
	symbol VARCHAR(10) NOT NULL,
	shares INT NOT NULL,
	UNIQUE KEY user_symbol_idx (user_id, symbol),
	FOREIGN KEY (user_id) REFERENCES users(id)
);
*/
