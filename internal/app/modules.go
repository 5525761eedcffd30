package app

import (
	"github.com/vk/voxelgridgo/internal/extradata"
	"github.com/vk/voxelgridgo/modules/lightcolor"
	"github.com/vk/voxelgridgo/modules/moisture"
)

// coreModules is the definitive list of extension modules that are compiled
// into the voxelgridgo binary.
var coreModules = []extradata.Module{
	&moisture.Module{},
	&lightcolor.Module{},
}
