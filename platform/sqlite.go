package platform

import "github.com/hatlonely/ddlx/dbtype"

// newSqlitePlatform sqlite3 平台，列类型收敛到 TEXT/INTEGER/REAL/BLOB 亲和性
func newSqlitePlatform() *Platform {
	mapping := dbtype.NewDbPlatformTypeMapping()

	mapping.Put(dbtype.Varchar, dbtype.NewNativeDbPlatformType("text"))
	mapping.Put(dbtype.Char, dbtype.NewNativeDbPlatformType("text"))
	mapping.Put(dbtype.Clob, dbtype.NewNativeDbPlatformType("text"))
	mapping.Put(dbtype.LongVarchar, dbtype.NewNativeDbPlatformType("text"))
	mapping.Put(dbtype.Date, dbtype.NewNativeDbPlatformType("text"))
	mapping.Put(dbtype.Time, dbtype.NewNativeDbPlatformType("text"))
	mapping.Put(dbtype.Timestamp, dbtype.NewNativeDbPlatformType("text"))

	mapping.Put(dbtype.Boolean, dbtype.NewNativeDbPlatformType("integer"))
	mapping.Put(dbtype.Bit, dbtype.NewNativeDbPlatformType("integer"))
	mapping.Put(dbtype.TinyInt, dbtype.NewNativeDbPlatformType("integer"))
	mapping.Put(dbtype.SmallInt, dbtype.NewNativeDbPlatformType("integer"))
	mapping.Put(dbtype.BigInt, dbtype.NewNativeDbPlatformType("integer"))

	mapping.Put(dbtype.Real, dbtype.NewNativeDbPlatformType("real"))
	mapping.Put(dbtype.Double, dbtype.NewNativeDbPlatformType("real"))
	mapping.Put(dbtype.Decimal, dbtype.NewNativeDbPlatformType("numeric"))

	mapping.Put(dbtype.Binary, dbtype.NewNativeDbPlatformType("blob"))
	mapping.Put(dbtype.Varbinary, dbtype.NewNativeDbPlatformType("blob"))
	mapping.Put(dbtype.LongVarbinary, dbtype.NewNativeDbPlatformType("blob"))

	return &Platform{
		name:        "sqlite3",
		nativeUuid:  false,
		typeMapping: mapping,
	}
}
