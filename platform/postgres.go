package platform

import "github.com/hatlonely/ddlx/dbtype"

// newPostgresPlatform postgres 平台，JSON/JSONB/HSTORE/UUID 都有原生类型
func newPostgresPlatform() *Platform {
	mapping := dbtype.NewDbPlatformTypeMapping()

	mapping.Put(dbtype.Integer, dbtype.NewNativeDbPlatformType("integer"))
	mapping.Put(dbtype.Double, dbtype.NewNativeDbPlatformType("float"))
	mapping.Put(dbtype.TinyInt, dbtype.NewNativeDbPlatformType("smallint"))
	mapping.Put(dbtype.Bit, dbtype.NewNativeDbPlatformType("bit"))

	mapping.Put(dbtype.Binary, dbtype.NewNativeDbPlatformType("bytea"))
	mapping.Put(dbtype.Varbinary, dbtype.NewNativeDbPlatformType("bytea"))
	mapping.Put(dbtype.Blob, dbtype.NewNativeDbPlatformType("bytea"))
	mapping.Put(dbtype.LongVarbinary, dbtype.NewNativeDbPlatformType("bytea"))
	mapping.Put(dbtype.Clob, dbtype.NewNativeDbPlatformType("text"))
	mapping.Put(dbtype.LongVarchar, dbtype.NewNativeDbPlatformType("text"))

	mapping.Put(dbtype.HStore, dbtype.NewNativeDbPlatformType("hstore"))
	mapping.Put(dbtype.JSON, dbtype.NewNativeDbPlatformType("json"))
	mapping.Put(dbtype.JSONB, dbtype.NewNativeDbPlatformType("jsonb"))

	return &Platform{
		name:        "postgres",
		nativeUuid:  true,
		typeMapping: mapping,
	}
}
