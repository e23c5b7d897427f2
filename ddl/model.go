package ddl

// TableModel 表模型定义
type TableModel struct {
	Table      string
	Columns    []ColumnDefinition
	PrimaryKey []string          // 主键字段名列表，支持复合主键
	Indexes    []IndexDefinition // 普通索引
}

// ColumnDefinition 列定义，Type 为逻辑类型名，如 VARCHAR、JSON、UUID
type ColumnDefinition struct {
	Name     string
	Type     string
	Length   int // 列长度，如 VARCHAR(255)
	Scale    int // 精度，如 DECIMAL(16,3)
	Required bool
	Default  any
}

// IndexDefinition 索引定义
type IndexDefinition struct {
	Name   string
	Fields []string
	Unique bool
}
