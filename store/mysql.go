package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/go-sql-driver/mysql"

	"github.com/astaxie/beego/orm"
	"github.com/gitpan/Search-FreeText/errs"
)

// kvRow is registered with beego/orm purely so MySQLStore shares the
// teacher's "RegisterModel, then talk to the table" shape; the actual
// reads/writes below go through o.Raw because the table's primary key
// is the engine's own string key rather than an auto-increment id.
type kvRow struct {
	Key   string `orm:"pk;size(512);column(k)"`
	Value string `orm:"type(text);column(v)"`
}

func (kvRow) TableName() string {
	return "search_kv"
}

var registerOnce sync.Once

// MySQLStore wraps github.com/astaxie/beego/orm over
// github.com/go-sql-driver/mysql: one two-column table, "k"/"v".
type MySQLStore struct {
	DSN       string
	TableName string

	o orm.Ormer
}

// NewMySQLStore returns a Store backed by a MySQL table named table
// (default "search_kv" if table == "") reached via dsn.
func NewMySQLStore(dsn, table string) *MySQLStore {
	if table == "" {
		table = "search_kv"
	}
	return &MySQLStore{DSN: dsn, TableName: table}
}

func (s *MySQLStore) Open(ctx context.Context) error {
	registerOnce.Do(func() {
		orm.RegisterDriver("mysql", orm.DRMySQL)
		orm.RegisterModel(new(kvRow))
	})
	if err := orm.RegisterDataBase("search_kv_"+s.TableName, "mysql", s.DSN); err != nil {
		return &errs.Store{Op: "open", Err: fmt.Errorf("mysql: %w", err)}
	}
	o := orm.NewOrm()
	if err := o.Using("search_kv_" + s.TableName); err != nil {
		return &errs.Store{Op: "open", Err: fmt.Errorf("mysql: %w", err)}
	}
	s.o = o

	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		k VARBINARY(512) NOT NULL PRIMARY KEY,
		v LONGTEXT NOT NULL
	)`, s.TableName)
	if _, err := s.o.Raw(ddl).Exec(); err != nil {
		return &errs.Store{Op: "open", Err: fmt.Errorf("mysql create table: %w", err)}
	}
	return nil
}

func (s *MySQLStore) Close(ctx context.Context) error {
	return nil
}

func (s *MySQLStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	q := fmt.Sprintf("SELECT v FROM %s WHERE k = ?", s.TableName)
	err := s.o.Raw(q, key).QueryRow(&value)
	if err == orm.ErrNoRows || err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, &errs.Store{Op: "get", Key: key, Err: err}
	}
	return value, true, nil
}

func (s *MySQLStore) Put(ctx context.Context, key, value string) error {
	q := fmt.Sprintf("INSERT INTO %s (k, v) VALUES (?, ?) ON DUPLICATE KEY UPDATE v = VALUES(v)", s.TableName)
	if _, err := s.o.Raw(q, key, value).Exec(); err != nil {
		return &errs.Store{Op: "put", Key: key, Err: err}
	}
	return nil
}

func (s *MySQLStore) Delete(ctx context.Context, key string) error {
	q := fmt.Sprintf("DELETE FROM %s WHERE k = ?", s.TableName)
	if _, err := s.o.Raw(q, key).Exec(); err != nil {
		return &errs.Store{Op: "delete", Key: key, Err: err}
	}
	return nil
}

func (s *MySQLStore) Clear(ctx context.Context) error {
	q := fmt.Sprintf("DELETE FROM %s", s.TableName)
	if _, err := s.o.Raw(q).Exec(); err != nil {
		return &errs.Store{Op: "clear", Err: err}
	}
	return nil
}
