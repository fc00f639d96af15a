package graph

import "netlab-designer/internal/icons"

// NodeDraw describes a placeable node type. Exactly one of Icon or
// ImageFile is set: built-in types carry an icon id, custom types a file
// path.
type NodeDraw struct {
	Name      string
	Label     string
	Icon      icons.ID
	ImageFile string
}

// Custom reports whether the node type's icon comes from disk.
func (n NodeDraw) Custom() bool {
	return n.ImageFile != ""
}

// Nodes returns the built-in container node types offered by the node
// picker.
func Nodes() []NodeDraw {
	return []NodeDraw{
		{Name: "router", Label: "Router", Icon: icons.Router},
		{Name: "host", Label: "Host", Icon: icons.Host},
		{Name: "pc", Label: "PC", Icon: icons.PC},
	}
}

// NetworkNodes returns the link-layer node types offered by the network
// picker.
func NetworkNodes() []NodeDraw {
	return []NodeDraw{
		{Name: "hub", Label: "Hub", Icon: icons.Hub},
		{Name: "switch", Label: "Switch", Icon: icons.Switch},
		{Name: "wireless", Label: "Wireless LAN", Icon: icons.Wireless},
	}
}
