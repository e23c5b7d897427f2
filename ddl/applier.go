package ddl

import (
	"context"
	"database/sql"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// ApplierOptions DDL 执行器配置选项
type ApplierOptions struct {
	Driver   string `cfg:"driver" def:"sqlite3"`
	DSN      string `cfg:"dsn"`
	MaxConns int    `cfg:"maxConns" def:"10"`
	MaxIdle  int    `cfg:"maxIdle" def:"5"`
}

// Applier 把生成的 DDL 语句应用到数据库
type Applier struct {
	db *sql.DB
}

func NewApplierWithOptions(options *ApplierOptions) (*Applier, error) {
	if options.Driver == "" {
		options.Driver = "sqlite3"
	}
	if options.MaxConns == 0 {
		options.MaxConns = 10
	}
	if options.MaxIdle == 0 {
		options.MaxIdle = 5
	}

	db, err := sql.Open(options.Driver, options.DSN)
	if err != nil {
		return nil, errors.WithMessage(err, "sql.Open failed")
	}

	db.SetMaxOpenConns(options.MaxConns)
	db.SetMaxIdleConns(options.MaxIdle)

	if err := db.Ping(); err != nil {
		return nil, errors.WithMessage(err, "db.Ping failed")
	}

	return &Applier{db: db}, nil
}

// NewApplier 复用已有连接
func NewApplier(db *sql.DB) *Applier {
	return &Applier{db: db}
}

// Apply 依次执行 DDL 语句，表或索引已存在时忽略
func (a *Applier) Apply(ctx context.Context, statements ...string) error {
	for _, statement := range statements {
		if _, err := a.db.ExecContext(ctx, statement); err != nil {
			if isAlreadyExists(err) {
				continue
			}
			return errors.WithMessagef(err, "apply statement failed: %s", statement)
		}
	}
	return nil
}

// Migrate 生成并应用表模型的全部 DDL 语句
func (a *Applier) Migrate(ctx context.Context, writer *Writer, model *TableModel) error {
	createTableSQL, err := writer.BuildCreateTable(model)
	if err != nil {
		return err
	}

	statements := []string{createTableSQL}
	for _, index := range model.Indexes {
		statements = append(statements, writer.BuildCreateIndex(model.Table, index))
	}

	return a.Apply(ctx, statements...)
}

func (a *Applier) Close() error {
	return a.db.Close()
}

func isAlreadyExists(err error) bool {
	message := err.Error()
	return strings.Contains(message, "already exists") ||
		strings.Contains(message, "already exist") ||
		strings.Contains(message, "Duplicate key name")
}
