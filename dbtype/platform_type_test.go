package dbtype

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDbPlatformTypeRender(t *testing.T) {
	Convey("测试 DbPlatformType Render 方法", t, func() {
		Convey("无长度类型", func() {
			platformType := NewDbPlatformType("integer")
			So(platformType.Render(0, 0), ShouldEqual, "integer")
		})

		Convey("默认长度", func() {
			platformType := NewDbPlatformTypeWithLength("varchar", 255)
			So(platformType.Render(0, 0), ShouldEqual, "varchar(255)")
		})

		Convey("显式长度覆盖默认长度", func() {
			platformType := NewDbPlatformTypeWithLength("varchar", 255)
			So(platformType.Render(100, 0), ShouldEqual, "varchar(100)")
		})

		Convey("长度和精度", func() {
			platformType := NewDbPlatformTypeWithLength("decimal", 38)
			So(platformType.Render(16, 3), ShouldEqual, "decimal(16,3)")
		})

		Convey("原生类型忽略长度", func() {
			platformType := NewNativeDbPlatformType("uuid")
			So(platformType.Render(40, 0), ShouldEqual, "uuid")
		})
	})
}

func TestDbPlatformTypeWithLength(t *testing.T) {
	Convey("测试 WithLength 派生副本", t, func() {
		base := NewDbPlatformTypeWithLength("binary", 255)
		derived := base.WithLength(16)

		So(derived.DefaultLength, ShouldEqual, 16)
		So(derived.Name, ShouldEqual, "binary")
		// 原描述符不受影响
		So(base.DefaultLength, ShouldEqual, 255)
	})
}

func TestDbPlatformTypeIsPlaceholder(t *testing.T) {
	Convey("测试占位标记", t, func() {
		So(NewDbPlatformType("varchar").IsPlaceholder(), ShouldBeFalse)
		So(jsonClobPlaceholder.IsPlaceholder(), ShouldBeTrue)
		So(jsonBlobPlaceholder.IsPlaceholder(), ShouldBeTrue)
		So(jsonVarcharPlaceholder.IsPlaceholder(), ShouldBeTrue)
		So(uuidPlaceholder.IsPlaceholder(), ShouldBeTrue)
	})
}
