package ospfconfig

import "time"

// OSPF RFC 2328 defaults, used unconditionally by
// fibbingnode.misc.mininetlib.iprouter.IPRouter in original_source/.
const (
	DefaultArea          = "0.0.0.0"
	DefaultHelloInterval = 10 * time.Second
	DefaultDeadInterval  = 40 * time.Second
)

// InterfaceConfig describes one router interface: the real network it
// sits on (or, for a fake link advertised towards a phantom, the
// synthetic one) and the OSPF cost it should advertise.
type InterfaceConfig struct {
	Name     string
	Cost     int64
	Networks []string
}

// RouterConfig describes one router's OSPF process configuration.
type RouterConfig struct {
	RouterID      string
	Area          string
	HelloInterval time.Duration
	DeadInterval  time.Duration
	Interfaces    []InterfaceConfig
}

// RouterConfigOption configures a RouterConfig at construction time,
// mirroring the teacher's igpgraph.GraphOption pattern.
type RouterConfigOption func(*RouterConfig)

// WithArea overrides the default OSPF area.
func WithArea(area string) RouterConfigOption {
	return func(c *RouterConfig) { c.Area = area }
}

// WithHelloInterval overrides the default hello timer.
func WithHelloInterval(d time.Duration) RouterConfigOption {
	return func(c *RouterConfig) { c.HelloInterval = d }
}

// WithDeadInterval overrides the default dead timer.
func WithDeadInterval(d time.Duration) RouterConfigOption {
	return func(c *RouterConfig) { c.DeadInterval = d }
}

// WithInterfaces sets the router's interface list.
func WithInterfaces(ifaces ...InterfaceConfig) RouterConfigOption {
	return func(c *RouterConfig) { c.Interfaces = ifaces }
}

// NewRouterConfig builds a RouterConfig for routerID with RFC 2328
// defaults, applying opts in order.
func NewRouterConfig(routerID string, opts ...RouterConfigOption) *RouterConfig {
	c := &RouterConfig{
		RouterID:      routerID,
		Area:          DefaultArea,
		HelloInterval: DefaultHelloInterval,
		DeadInterval:  DefaultDeadInterval,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}
