package hardware

import (
	"fmt"
	"net"
)

// InterfaceAddrs is one network interface and the addresses bound to it.
type InterfaceAddrs struct {
	Name  string
	Flags net.Flags
	Addrs []net.Addr
}

// InterfaceLister lists the network interfaces of the machine.
type InterfaceLister interface {
	Interfaces() ([]InterfaceAddrs, error)
}

// OSInterfaces lists interfaces through the net package.
type OSInterfaces struct{}

// Interfaces returns every interface with its addresses. Interfaces whose addresses can not be
// read are returned without addresses.
func (OSInterfaces) Interfaces() ([]InterfaceAddrs, error) {
	interfaces, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("listing network interfaces: %w", err)
	}

	result := make([]InterfaceAddrs, 0, len(interfaces))
	for _, iface := range interfaces {
		addrs, err := iface.Addrs()
		if err != nil {
			addrs = nil
		}
		result = append(result, InterfaceAddrs{Name: iface.Name, Flags: iface.Flags, Addrs: addrs})
	}
	return result, nil
}

// Network resolves the local IPv4 address.
type Network struct {
	Lister InterfaceLister
}

// LocalIPv4 returns the first IPv4 address of an interface that is up and not a loopback. The
// second result is false when there is none.
func (n Network) LocalIPv4() (string, bool) {
	lister := n.Lister
	if lister == nil {
		lister = OSInterfaces{}
	}
	interfaces, err := lister.Interfaces()
	if err != nil {
		return "", false
	}
	return firstLocalIPv4(interfaces)
}

func firstLocalIPv4(interfaces []InterfaceAddrs) (string, bool) {
	for _, iface := range interfaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		for _, addr := range iface.Addrs {
			var ip net.IP
			switch value := addr.(type) {
			case *net.IPNet:
				ip = value.IP
			case *net.IPAddr:
				ip = value.IP
			}
			if ip == nil || ip.IsLoopback() {
				continue
			}
			if v4 := ip.To4(); v4 != nil {
				return v4.String(), true
			}
		}
	}
	return "", false
}
