package dbtype

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewDbPlatformTypeMapping(t *testing.T) {
	Convey("测试物理模式默认绑定", t, func() {
		mapping := NewDbPlatformTypeMapping()

		Convey("初始化后所有逻辑类型都有绑定", func() {
			for _, dbType := range DbTypes() {
				platformType := mapping.Get(dbType)
				So(platformType.Name, ShouldNotBeEmpty)
			}
		})

		Convey("通用默认值", func() {
			So(mapping.Get(Varchar).Name, ShouldEqual, "varchar")
			So(mapping.Get(Varchar).DefaultLength, ShouldEqual, 255)
			So(mapping.Get(Char).DefaultLength, ShouldEqual, 1)
			So(mapping.Get(Decimal).DefaultLength, ShouldEqual, 38)
			So(mapping.Get(Real).Name, ShouldEqual, "float")
			So(mapping.Get(Boolean).Name, ShouldEqual, "boolean")
		})

		Convey("JSON 族绑定为占位类型", func() {
			So(mapping.Get(JSON).Placeholder, ShouldEqual, PlaceholderClob)
			So(mapping.Get(JSONB).Placeholder, ShouldEqual, PlaceholderClob)
			So(mapping.Get(JSONBlob).Placeholder, ShouldEqual, PlaceholderBlob)
			So(mapping.Get(JSONVarchar).Placeholder, ShouldEqual, PlaceholderVarchar)
			So(mapping.Get(UUID).Placeholder, ShouldEqual, PlaceholderUUID)
		})
	})
}

func TestNewLogicalTypeMapping(t *testing.T) {
	Convey("测试逻辑模式默认绑定", t, func() {
		mapping := NewLogicalTypeMapping()

		Convey("JSON 族保留为真正的逻辑类型", func() {
			jsonType, err := mapping.Lookup("JSON", false)
			So(err, ShouldBeNil)
			So(jsonType.Name, ShouldEqual, "json")
			So(jsonType.IsPlaceholder(), ShouldBeFalse)

			jsonbType, err := mapping.Lookup("JSONB", false)
			So(err, ShouldBeNil)
			So(jsonbType.Name, ShouldEqual, "jsonb")
		})

		Convey("UUID 保留为原生类型", func() {
			So(mapping.Get(UUID).Name, ShouldEqual, "uuid")
			So(mapping.Get(UUID).SupportsLength, ShouldBeFalse)
		})

		Convey("HSTORE 保留为逻辑类型", func() {
			So(mapping.Get(HStore).Name, ShouldEqual, "hstore")
		})

		Convey("JSONVARCHAR 默认长度 1000", func() {
			So(mapping.Get(JSONVarchar).DefaultLength, ShouldEqual, 1000)
		})
	})
}

func TestDbPlatformTypeMappingLookup(t *testing.T) {
	Convey("测试 Lookup 解析", t, func() {
		mapping := NewDbPlatformTypeMapping()

		Convey("直接绑定类型", func() {
			platformType, err := mapping.Lookup("VARCHAR", false)
			So(err, ShouldBeNil)
			So(platformType, ShouldResemble, mapping.Get(Varchar))
		})

		Convey("忽略大小写和空白", func() {
			platformType, err := mapping.Lookup(" varchar ", false)
			So(err, ShouldBeNil)
			So(platformType, ShouldResemble, mapping.Get(Varchar))
		})

		Convey("未知类型名返回错误", func() {
			_, err := mapping.Lookup("unknowntype", false)
			So(err, ShouldNotBeNil)
		})

		Convey("JSON 无长度时落到 CLOB", func() {
			platformType, err := mapping.Lookup("JSON", false)
			So(err, ShouldBeNil)
			So(platformType, ShouldResemble, mapping.Get(Clob))
		})

		Convey("JSON 有长度时落到 VARCHAR", func() {
			platformType, err := mapping.Lookup("JSON", true)
			So(err, ShouldBeNil)
			So(platformType, ShouldResemble, mapping.Get(Varchar))
		})

		Convey("JSONB 与 JSON 解析规则一致", func() {
			platformType, err := mapping.Lookup("JSONB", false)
			So(err, ShouldBeNil)
			So(platformType, ShouldResemble, mapping.Get(Clob))
		})

		Convey("JSONCLOB 落到 CLOB 绑定", func() {
			platformType, err := mapping.Lookup("JSONCLOB", false)
			So(err, ShouldBeNil)
			So(platformType, ShouldResemble, mapping.Get(Clob))
		})

		Convey("JSONBLOB 落到 BLOB 绑定", func() {
			platformType, err := mapping.Lookup("JSONBLOB", false)
			So(err, ShouldBeNil)
			So(platformType, ShouldResemble, mapping.Get(Blob))
		})

		Convey("JSONVARCHAR 始终落到 VARCHAR 绑定", func() {
			withoutScale, err := mapping.Lookup("JSONVARCHAR", false)
			So(err, ShouldBeNil)
			So(withoutScale, ShouldResemble, mapping.Get(Varchar))

			withScale, err := mapping.Lookup("JSONVARCHAR", true)
			So(err, ShouldBeNil)
			So(withScale, ShouldResemble, mapping.Get(Varchar))
		})

		Convey("平台绑定真实 JSON 类型后直接返回", func() {
			mapping.Put(JSON, NewNativeDbPlatformType("json"))
			platformType, err := mapping.Lookup("JSON", false)
			So(err, ShouldBeNil)
			So(platformType.Name, ShouldEqual, "json")
		})
	})
}

func TestDbPlatformTypeMappingPut(t *testing.T) {
	Convey("测试 Put 覆盖绑定", t, func() {
		mapping := NewDbPlatformTypeMapping()

		Convey("覆盖后立即生效", func() {
			mapping.Put(Clob, NewNativeDbPlatformType("text"))

			platformType, err := mapping.Lookup("JSON", false)
			So(err, ShouldBeNil)
			So(platformType.Name, ShouldEqual, "text")
		})

		Convey("后写覆盖先写", func() {
			mapping.Put(Varchar, NewDbPlatformTypeWithLength("nvarchar", 255))
			mapping.Put(Varchar, NewDbPlatformTypeWithLength("varchar2", 4000))
			So(mapping.Get(Varchar).Name, ShouldEqual, "varchar2")
		})
	})
}

func TestDbPlatformTypeMappingGetByCode(t *testing.T) {
	Convey("测试 GetByCode", t, func() {
		mapping := NewDbPlatformTypeMapping()

		Convey("按编码直接返回绑定", func() {
			platformType, err := mapping.GetByCode(int(Varchar))
			So(err, ShouldBeNil)
			So(platformType, ShouldResemble, mapping.Get(Varchar))
		})

		Convey("JSON 编码返回占位绑定，不做解析", func() {
			platformType, err := mapping.GetByCode(int(JSON))
			So(err, ShouldBeNil)
			So(platformType.IsPlaceholder(), ShouldBeTrue)
		})

		Convey("未知编码返回错误", func() {
			_, err := mapping.GetByCode(99999)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestDbPlatformTypeMappingConfigUuid(t *testing.T) {
	Convey("测试 ConfigUuid", t, func() {
		Convey("平台支持且策略接受原生类型", func() {
			mapping := NewDbPlatformTypeMapping()
			mapping.ConfigUuid(true, UuidStorageNative)

			So(mapping.Get(UUID).Name, ShouldEqual, "uuid")
			So(mapping.Get(UUID).SupportsLength, ShouldBeFalse)
		})

		Convey("自动策略在平台支持时使用原生类型", func() {
			mapping := NewDbPlatformTypeMapping()
			mapping.ConfigUuid(true, UuidStorageAutoVarchar)

			So(mapping.Get(UUID).Name, ShouldEqual, "uuid")
		})

		Convey("自动二进制策略在平台不支持时落到 binary(16)", func() {
			mapping := NewDbPlatformTypeMapping()
			mapping.ConfigUuid(false, UuidStorageAutoBinary)

			So(mapping.Get(UUID).Name, ShouldEqual, "binary")
			So(mapping.Get(UUID).DefaultLength, ShouldEqual, 16)
		})

		Convey("强制二进制策略无视平台能力", func() {
			mapping := NewDbPlatformTypeMapping()
			mapping.ConfigUuid(true, UuidStorageBinary)

			So(mapping.Get(UUID).Name, ShouldEqual, "binary")
			So(mapping.Get(UUID).DefaultLength, ShouldEqual, 16)
		})

		Convey("其余情况落到 varchar(40)", func() {
			mapping := NewDbPlatformTypeMapping()
			mapping.ConfigUuid(false, UuidStorageAutoVarchar)

			So(mapping.Get(UUID).Name, ShouldEqual, "varchar")
			So(mapping.Get(UUID).DefaultLength, ShouldEqual, 40)
		})
	})
}
