package dbtype

import "strings"

const (
	uuidBinaryLength  = 16
	uuidVarcharLength = 40
)

var (
	uuidNative             = NewNativeDbPlatformType("uuid")
	uuidPlaceholder        = DbPlatformType{Name: "uuidPlaceholder", Placeholder: PlaceholderUUID}
	jsonClobPlaceholder    = DbPlatformType{Name: "jsonClobPlaceholder", Placeholder: PlaceholderClob}
	jsonBlobPlaceholder    = DbPlatformType{Name: "jsonBlobPlaceholder", Placeholder: PlaceholderBlob}
	jsonVarcharPlaceholder = DbPlatformType{Name: "jsonVarcharPlaceholder", Placeholder: PlaceholderVarchar}
)

// DbPlatformTypeMapping 逻辑类型到平台类型的注册表
//
// 由平台配置组件构造并在启动阶段完成少量覆盖，之后只读，内部不加锁。
// 初始化后每个 DbType 都有且仅有一个绑定，覆盖只替换不删除。
type DbPlatformTypeMapping struct {
	typeMap map[DbType]DbPlatformType
}

// NewDbPlatformTypeMapping 创建物理模式注册表
//
// JSON 族和 UUID 绑定为占位类型，物理表示延迟到 Lookup 时根据上下文
// 落到 CLOB/BLOB/VARCHAR。
func NewDbPlatformTypeMapping() *DbPlatformTypeMapping {
	m := &DbPlatformTypeMapping{typeMap: map[DbType]DbPlatformType{}}
	m.loadDefaults(false)
	return m
}

// NewLogicalTypeMapping 创建逻辑模式注册表
//
// JSON 族、HSTORE 和 UUID 保留为真正的逻辑类型，用于两层 DDL 生成。
func NewLogicalTypeMapping() *DbPlatformTypeMapping {
	m := &DbPlatformTypeMapping{typeMap: map[DbType]DbPlatformType{}}
	m.loadDefaults(true)
	return m
}

func (m *DbPlatformTypeMapping) loadDefaults(logicalTypes bool) {
	m.putDefault(Boolean)
	m.putDefault(Bit)
	m.putDefault(Integer)
	m.putDefault(BigInt)
	m.Put(Real, NewDbPlatformType("float"))

	m.putDefault(Double)
	m.putDefault(SmallInt)
	m.putDefault(TinyInt)
	m.Put(Decimal, NewDbPlatformTypeWithLength("decimal", 38))

	m.Put(Varchar, NewDbPlatformTypeWithLength("varchar", 255))
	m.Put(Char, NewDbPlatformTypeWithLength("char", 1))

	m.putDefault(Blob)
	m.putDefault(Clob)
	m.putDefault(Array)

	if logicalTypes {
		// 保留逻辑类型，物理表示由第二层 DDL 生成决定
		m.Put(HStore, NewNativeDbPlatformType("hstore"))
		m.Put(JSON, NewNativeDbPlatformType("json"))
		m.Put(JSONB, NewNativeDbPlatformType("jsonb"))
		m.Put(JSONClob, NewDbPlatformType("jsonclob"))
		m.Put(JSONBlob, NewDbPlatformType("jsonblob"))
		m.Put(JSONVarchar, NewDbPlatformTypeWithLength("jsonvarchar", 1000))
		m.Put(UUID, uuidNative)
	} else {
		// postgres 覆盖 JSON/JSONB/HSTORE 为原生类型
		m.Put(HStore, jsonClobPlaceholder)
		m.Put(JSON, jsonClobPlaceholder)
		m.Put(JSONB, jsonClobPlaceholder)
		m.Put(JSONClob, jsonClobPlaceholder)
		m.Put(JSONBlob, jsonBlobPlaceholder)
		m.Put(JSONVarchar, jsonVarcharPlaceholder)
		m.Put(UUID, uuidPlaceholder)
	}

	m.putDefault(LongVarbinary)
	m.putDefault(LongVarchar)
	m.Put(Varbinary, NewDbPlatformTypeWithLength("varbinary", 255))
	m.Put(Binary, NewDbPlatformTypeWithLength("binary", 255))

	m.putDefault(Date)
	m.putDefault(Time)
	m.putDefault(Timestamp)
}

func (m *DbPlatformTypeMapping) putDefault(t DbType) {
	m.Put(t, NewDbPlatformType(strings.ToLower(t.String())))
}

// Put 覆盖逻辑类型的绑定，后写覆盖先写
func (m *DbPlatformTypeMapping) Put(t DbType, platformType DbPlatformType) {
	m.typeMap[t] = platformType
}

// Get 返回逻辑类型当前的绑定，不做 JSON 占位解析
func (m *DbPlatformTypeMapping) Get(t DbType) DbPlatformType {
	return m.typeMap[t]
}

// GetByCode 按数值编码返回绑定，不做 JSON 占位解析
func (m *DbPlatformTypeMapping) GetByCode(code int) (DbPlatformType, error) {
	t, err := DbTypeByCode(code)
	if err != nil {
		return DbPlatformType{}, err
	}
	return m.Get(t), nil
}

// Lookup 按标准类型名解析平台类型，名称不区分大小写并忽略首尾空白
//
// JSON 族类型按占位标记解析：clob 占位在 withScale 时落到 VARCHAR，
// 否则落到 CLOB；blob 占位落到 BLOB；varchar 占位落到 VARCHAR；
// 平台已绑定真实 JSON 类型时直接返回绑定。
func (m *DbPlatformTypeMapping) Lookup(name string, withScale bool) (DbPlatformType, error) {
	t, err := ParseDbType(name)
	if err != nil {
		return DbPlatformType{}, err
	}
	switch t {
	case JSONBlob:
		return m.Get(Blob), nil
	case JSONClob:
		return m.Get(Clob), nil
	case JSONVarchar:
		return m.Get(Varchar), nil
	case JSON, JSONB, HStore:
		return m.jsonType(t, withScale), nil
	default:
		return m.Get(t), nil
	}
}

func (m *DbPlatformTypeMapping) jsonType(t DbType, withScale bool) DbPlatformType {
	platformType := m.Get(t)
	switch platformType.Placeholder {
	case PlaceholderClob:
		// 指定了长度说明存为文本
		if withScale {
			return m.Get(Varchar)
		}
		return m.Get(Clob)
	case PlaceholderBlob:
		return m.Get(Blob)
	case PlaceholderVarchar:
		return m.Get(Varchar)
	}
	return platformType
}

// ConfigUuid 根据平台能力和存储策略重新绑定 UUID 类型
func (m *DbPlatformTypeMapping) ConfigUuid(nativeSupport bool, storage UuidStorage) {
	if nativeSupport && storage.UseNative() {
		m.Put(UUID, uuidNative)
	} else if storage.UseBinary() {
		m.Put(UUID, m.Get(Binary).WithLength(uuidBinaryLength))
	} else {
		m.Put(UUID, m.Get(Varchar).WithLength(uuidVarcharLength))
	}
}
