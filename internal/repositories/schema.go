package repositories

import "database/sql"

// EnsureSchema creates the tables this service owns when they are
// missing. Idempotent; safe to call on every start.
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			phone_number VARCHAR(100) NOT NULL DEFAULT '',
			customer_type VARCHAR(32) NOT NULL DEFAULT 'REGULAR',
			miles_flown INT NOT NULL DEFAULT 0,
			membership_level VARCHAR(32) NOT NULL DEFAULT 'NONE',
			role VARCHAR(32) NOT NULL DEFAULT 'USER',
			UNIQUE KEY uniq_users_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
		`CREATE TABLE IF NOT EXISTS flights (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			flight_number VARCHAR(32) NOT NULL,
			origin VARCHAR(255) NOT NULL,
			destination VARCHAR(255) NOT NULL,
			departure_time VARCHAR(64) NOT NULL DEFAULT '',
			capacity INT NOT NULL,
			available_seats INT NOT NULL,
			base_price DOUBLE NOT NULL,
			UNIQUE KEY uniq_flights_number (flight_number)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
		`CREATE TABLE IF NOT EXISTS passengers (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			first_name VARCHAR(255) NOT NULL,
			last_name VARCHAR(255) NOT NULL,
			age INT NOT NULL DEFAULT 0,
			seat_preference VARCHAR(32) NOT NULL DEFAULT 'NO_PREFERENCE',
			user_id BIGINT NOT NULL DEFAULT 0,
			KEY idx_passengers_user (user_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			reference VARCHAR(64) NOT NULL,
			user_id BIGINT NOT NULL,
			flight_id BIGINT NOT NULL,
			passenger_id BIGINT NOT NULL,
			seat_number VARCHAR(32) NOT NULL DEFAULT '',
			total_price DOUBLE NOT NULL,
			discount_amount DOUBLE NOT NULL DEFAULT 0,
			status VARCHAR(32) NOT NULL DEFAULT 'CONFIRMED',
			booking_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_bookings_reference (reference),
			KEY idx_bookings_user (user_id),
			KEY idx_bookings_flight (flight_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	}

	for _, ddl := range stmts {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}
