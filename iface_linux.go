//go:build linux

package socketcan

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Network interface helpers for CAN devices. Flag changes require
// CAP_NET_ADMIN; without it the kernel returns EPERM.

// IfIndex resolves a CAN interface name (e.g. "can0") to its index via the
// SIOCGIFINDEX ioctl, without touching the routing stack.
func IfIndex(name string) (int, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM, 0)
	if err != nil {
		return 0, err
	}
	defer unix.Close(fd)
	ifr, err := unix.NewIfreq(name)
	if err != nil {
		return 0, fmt.Errorf("socketcan: interface %q: %w", name, err)
	}
	if err := unix.IoctlIfreq(fd, unix.SIOCGIFINDEX, ifr); err != nil {
		return 0, fmt.Errorf("socketcan: SIOCGIFINDEX %q: %w", name, err)
	}
	return int(ifr.Uint32()), nil
}

// IsInterfaceUp reports whether the interface has IFF_UP set.
func IsInterfaceUp(name string) (bool, error) {
	flags, err := interfaceFlags(name)
	if err != nil {
		return false, err
	}
	return flags&unix.IFF_UP != 0, nil
}

// SetInterfaceUp sets IFF_UP on the interface. Requires CAP_NET_ADMIN.
func SetInterfaceUp(name string) error {
	flags, err := interfaceFlags(name)
	if err != nil {
		return err
	}
	if flags&unix.IFF_UP != 0 {
		return nil
	}
	return setInterfaceFlags(name, flags|unix.IFF_UP)
}

// SetInterfaceDown clears IFF_UP on the interface. Requires CAP_NET_ADMIN.
func SetInterfaceDown(name string) error {
	flags, err := interfaceFlags(name)
	if err != nil {
		return err
	}
	if flags&unix.IFF_UP == 0 {
		return nil
	}
	return setInterfaceFlags(name, flags&^uint16(unix.IFF_UP))
}

func interfaceFlags(name string) (uint16, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM, 0)
	if err != nil {
		return 0, err
	}
	defer unix.Close(fd)
	ifr, err := unix.NewIfreq(name)
	if err != nil {
		return 0, fmt.Errorf("socketcan: interface %q: %w", name, err)
	}
	if err := unix.IoctlIfreq(fd, unix.SIOCGIFFLAGS, ifr); err != nil {
		return 0, fmt.Errorf("socketcan: SIOCGIFFLAGS %q: %w", name, err)
	}
	return ifr.Uint16(), nil
}

func setInterfaceFlags(name string, flags uint16) error {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM, 0)
	if err != nil {
		return err
	}
	defer unix.Close(fd)
	ifr, err := unix.NewIfreq(name)
	if err != nil {
		return fmt.Errorf("socketcan: interface %q: %w", name, err)
	}
	ifr.SetUint16(flags)
	if err := unix.IoctlIfreq(fd, unix.SIOCSIFFLAGS, ifr); err != nil {
		return fmt.Errorf("socketcan: SIOCSIFFLAGS %q: %w", name, err)
	}
	return nil
}
