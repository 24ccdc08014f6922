package live

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
)

// Executor is the seam between statement application and the driver, so that
// Apply can be tested without a server.
type Executor interface {
	Exec(stmt string) error
	Close() error
}

type ConnParams struct {
	Host     string
	Port     uint
	User     string
	Password string
	Database string
}

type Connection struct {
	db *sql.DB
}

func Connect(params ConnParams) (*Connection, error) {
	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", params.Host, params.Port)
	cfg.User = params.User
	cfg.Passwd = params.Password
	cfg.DBName = params.Database

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, errors.Wrap(err, "opening connection")
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "connecting to %s", cfg.Addr)
	}
	return &Connection{db: db}, nil
}

func (c *Connection) Exec(stmt string) error {
	_, err := c.db.Exec(stmt)
	return err
}

func (c *Connection) Close() error {
	return c.db.Close()
}

// Apply executes each statement of the script in order, stopping at the first
// failure. Returns the number of statements executed successfully.
func Apply(exec Executor, script string) (int, error) {
	stmts := SplitStatements(script)
	for i, stmt := range stmts {
		if err := exec.Exec(stmt); err != nil {
			return i, errors.Wrapf(err, "statement %d", i+1)
		}
	}
	return len(stmts), nil
}

// SplitStatements breaks a generated script into executable statements,
// dropping blank and comment-only lines. Statements in generated scripts
// always end with a semicolon at end of line.
func SplitStatements(script string) []string {
	var stmts []string
	var current []string
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		current = append(current, line)
		if strings.HasSuffix(trimmed, ";") {
			stmts = append(stmts, strings.Join(current, "\n"))
			current = nil
		}
	}
	return stmts
}
