package platform

import (
	"github.com/go-playground/validator/v10"
	"github.com/hatlonely/ddlx/dbtype"
	"github.com/pkg/errors"
)

// PlatformOptions 平台配置选项
type PlatformOptions struct {
	Driver      string             `cfg:"driver" yaml:"driver" def:"generic" validate:"oneof=postgres mysql sqlite3 generic"`
	UuidStorage dbtype.UuidStorage `cfg:"uuidStorage" yaml:"uuidStorage" def:"autovarchar" validate:"oneof=autovarchar autobinary native binary varchar"`
}

// Platform 数据库平台描述，持有该平台的类型注册表
//
// 注册表在构造时完成平台覆盖和 UUID 策略绑定，之后只读。
type Platform struct {
	name        string
	nativeUuid  bool
	typeMapping *dbtype.DbPlatformTypeMapping
}

// NewPlatformWithOptions 按驱动名创建平台
func NewPlatformWithOptions(options *PlatformOptions) (*Platform, error) {
	if options == nil {
		options = &PlatformOptions{}
	}
	if options.Driver == "" {
		options.Driver = "generic"
	}
	if options.UuidStorage == "" {
		options.UuidStorage = dbtype.UuidStorageAutoVarchar
	}

	if err := validator.New().Struct(options); err != nil {
		return nil, errors.WithMessage(err, "invalid platform options")
	}

	var platform *Platform
	switch options.Driver {
	case "postgres":
		platform = newPostgresPlatform()
	case "mysql":
		platform = newMysqlPlatform()
	case "sqlite3":
		platform = newSqlitePlatform()
	default:
		platform = newGenericPlatform()
	}

	platform.typeMapping.ConfigUuid(platform.nativeUuid, options.UuidStorage)
	return platform, nil
}

// NewLogicalPlatform 创建逻辑平台，用于两层 DDL 生成的第一层
//
// JSON 族和 UUID 保留为逻辑类型，不做占位解析。
func NewLogicalPlatform() *Platform {
	return &Platform{
		name:        "logical",
		nativeUuid:  true,
		typeMapping: dbtype.NewLogicalTypeMapping(),
	}
}

// Name 平台名
func (p *Platform) Name() string {
	return p.name
}

// NativeUuid 平台是否有原生 UUID 列类型
func (p *Platform) NativeUuid() bool {
	return p.nativeUuid
}

// TypeMapping 平台的类型注册表
func (p *Platform) TypeMapping() *dbtype.DbPlatformTypeMapping {
	return p.typeMapping
}
