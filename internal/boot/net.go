// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package boot

import (
	"fmt"

	"github.com/vishvananda/netlink"
)

// ConfigureLoopbackInterface brings the loopback interface up.
//
// Kernel should configure the address already automatically.
func ConfigureLoopbackInterface() error {
	link, err := netlink.LinkByName("lo")
	if err != nil {
		return fmt.Errorf("get loopback link: %w", err)
	}

	err = netlink.LinkSetUp(link)
	if err != nil {
		return fmt.Errorf("set loopback link up: %w", err)
	}

	return nil
}
