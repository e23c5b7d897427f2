package platform

import "github.com/hatlonely/ddlx/dbtype"

// newMysqlPlatform mysql 平台，JSON 有原生类型，大对象落到 longtext/longblob
func newMysqlPlatform() *Platform {
	mapping := dbtype.NewDbPlatformTypeMapping()

	mapping.Put(dbtype.Bit, dbtype.NewNativeDbPlatformType("tinyint(1)"))
	mapping.Put(dbtype.Boolean, dbtype.NewNativeDbPlatformType("tinyint(1)"))
	mapping.Put(dbtype.Timestamp, dbtype.NewNativeDbPlatformType("datetime(6)"))
	mapping.Put(dbtype.Clob, dbtype.NewNativeDbPlatformType("longtext"))
	mapping.Put(dbtype.Blob, dbtype.NewNativeDbPlatformType("longblob"))
	mapping.Put(dbtype.LongVarchar, dbtype.NewNativeDbPlatformType("longtext"))
	mapping.Put(dbtype.LongVarbinary, dbtype.NewNativeDbPlatformType("longblob"))

	// mysql 5.7+ 原生 JSON，没有 jsonb
	mapping.Put(dbtype.JSON, dbtype.NewNativeDbPlatformType("json"))
	mapping.Put(dbtype.JSONB, dbtype.NewNativeDbPlatformType("json"))

	return &Platform{
		name:        "mysql",
		nativeUuid:  false,
		typeMapping: mapping,
	}
}
