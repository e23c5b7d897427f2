package dbtype

import (
	"strings"

	"github.com/pkg/errors"
)

// DbType 逻辑数据库列类型，数值编码与标准 SQL 类型编码保持一致
type DbType int

const (
	Boolean       DbType = 16
	Bit           DbType = -7
	Integer       DbType = 4
	BigInt        DbType = -5
	Real          DbType = 7
	Double        DbType = 8
	SmallInt      DbType = 5
	TinyInt       DbType = -6
	Decimal       DbType = 3
	Varchar       DbType = 12
	Char          DbType = 1
	Blob          DbType = 2004
	Clob          DbType = 2005
	Array         DbType = 2003
	LongVarbinary DbType = -4
	LongVarchar   DbType = -1
	Varbinary     DbType = -3
	Binary        DbType = -2
	Date          DbType = 91
	Time          DbType = 92
	Timestamp     DbType = 93
)

// 扩展类型编码在标准编码范围之外
const (
	HStore      DbType = 5000
	UUID        DbType = 5001
	JSON        DbType = 5010
	JSONB       DbType = 5011
	JSONVarchar DbType = 5012
	JSONClob    DbType = 5013
	JSONBlob    DbType = 5014
)

// dbTypeNames 类型与名称的唯一对照表，名称索引和编码索引都由它构建
var dbTypeNames = map[DbType]string{
	Boolean:       "BOOLEAN",
	Bit:           "BIT",
	Integer:       "INTEGER",
	BigInt:        "BIGINT",
	Real:          "REAL",
	Double:        "DOUBLE",
	SmallInt:      "SMALLINT",
	TinyInt:       "TINYINT",
	Decimal:       "DECIMAL",
	Varchar:       "VARCHAR",
	Char:          "CHAR",
	Blob:          "BLOB",
	Clob:          "CLOB",
	Array:         "ARRAY",
	LongVarbinary: "LONGVARBINARY",
	LongVarchar:   "LONGVARCHAR",
	Varbinary:     "VARBINARY",
	Binary:        "BINARY",
	Date:          "DATE",
	Time:          "TIME",
	Timestamp:     "TIMESTAMP",
	HStore:        "HSTORE",
	UUID:          "UUID",
	JSON:          "JSON",
	JSONB:         "JSONB",
	JSONVarchar:   "JSONVARCHAR",
	JSONClob:      "JSONCLOB",
	JSONBlob:      "JSONBLOB",
}

var dbTypeByName = map[string]DbType{}

func init() {
	for t, name := range dbTypeNames {
		dbTypeByName[name] = t
	}
}

// DbTypes 返回全部逻辑类型
func DbTypes() []DbType {
	types := make([]DbType, 0, len(dbTypeNames))
	for t := range dbTypeNames {
		types = append(types, t)
	}
	return types
}

func (t DbType) String() string {
	return dbTypeNames[t]
}

// ParseDbType 按名称解析逻辑类型，忽略大小写和首尾空白
func ParseDbType(name string) (DbType, error) {
	t, ok := dbTypeByName[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return 0, errors.Errorf("unknown type [%s] - not standard sql type", name)
	}
	return t, nil
}

// DbTypeByCode 按数值编码解析逻辑类型
func DbTypeByCode(code int) (DbType, error) {
	t := DbType(code)
	if _, ok := dbTypeNames[t]; !ok {
		return 0, errors.Errorf("unknown type code [%d]", code)
	}
	return t, nil
}
