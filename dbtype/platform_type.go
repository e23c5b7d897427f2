package dbtype

import "fmt"

// Placeholder 占位标记，表示该绑定把物理表示的决定延迟到解析时
type Placeholder int

const (
	PlaceholderNone Placeholder = iota
	PlaceholderClob
	PlaceholderBlob
	PlaceholderVarchar
	PlaceholderUUID
)

// DbPlatformType 平台类型描述符，按值传递，构造后不再修改
type DbPlatformType struct {
	Name           string
	DefaultLength  int
	DefaultScale   int
	SupportsLength bool
	Placeholder    Placeholder
}

// NewDbPlatformType 创建可带长度的平台类型
func NewDbPlatformType(name string) DbPlatformType {
	return DbPlatformType{Name: name, SupportsLength: true}
}

// NewDbPlatformTypeWithLength 创建带默认长度的平台类型
func NewDbPlatformTypeWithLength(name string, defaultLength int) DbPlatformType {
	return DbPlatformType{Name: name, DefaultLength: defaultLength, SupportsLength: true}
}

// NewNativeDbPlatformType 创建不接受长度的平台原生类型，如 postgres 的 uuid、json
func NewNativeDbPlatformType(name string) DbPlatformType {
	return DbPlatformType{Name: name}
}

// WithLength 派生一个带指定默认长度的副本
func (t DbPlatformType) WithLength(length int) DbPlatformType {
	t.DefaultLength = length
	return t
}

// IsPlaceholder 是否为占位类型，占位类型不能直接输出到 DDL
func (t DbPlatformType) IsPlaceholder() bool {
	return t.Placeholder != PlaceholderNone
}

// Render 输出列类型子句，length/scale 为 0 时回落到描述符默认值
func (t DbPlatformType) Render(length int, scale int) string {
	if !t.SupportsLength {
		return t.Name
	}
	if length == 0 {
		length = t.DefaultLength
	}
	if scale == 0 {
		scale = t.DefaultScale
	}
	if length > 0 && scale > 0 {
		return fmt.Sprintf("%s(%d,%d)", t.Name, length, scale)
	}
	if length > 0 {
		return fmt.Sprintf("%s(%d)", t.Name, length)
	}
	return t.Name
}
