package platform

import "github.com/hatlonely/ddlx/dbtype"

// newGenericPlatform 通用平台，保留物理模式默认绑定
func newGenericPlatform() *Platform {
	return &Platform{
		name:        "generic",
		nativeUuid:  false,
		typeMapping: dbtype.NewDbPlatformTypeMapping(),
	}
}
