package dbtype

// UuidStorage UUID 列的存储策略
type UuidStorage string

const (
	// UuidStorageAutoVarchar 平台支持时使用原生类型，否则存为 varchar(40)
	UuidStorageAutoVarchar UuidStorage = "autovarchar"
	// UuidStorageAutoBinary 平台支持时使用原生类型，否则存为 binary(16)
	UuidStorageAutoBinary UuidStorage = "autobinary"
	// UuidStorageNative 强制使用平台原生类型
	UuidStorageNative UuidStorage = "native"
	// UuidStorageBinary 强制存为 binary(16)
	UuidStorageBinary UuidStorage = "binary"
	// UuidStorageVarchar 强制存为 varchar(40)
	UuidStorageVarchar UuidStorage = "varchar"
)

// UseNative 策略是否接受平台原生类型
func (s UuidStorage) UseNative() bool {
	switch s {
	case UuidStorageNative, UuidStorageAutoVarchar, UuidStorageAutoBinary:
		return true
	}
	return false
}

// UseBinary 回落时是否存为二进制
func (s UuidStorage) UseBinary() bool {
	switch s {
	case UuidStorageBinary, UuidStorageAutoBinary:
		return true
	}
	return false
}
