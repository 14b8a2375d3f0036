// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"math/rand"
	"strings"
)

// networkGroup defines the faked network tools. Every command is a
// string template over its arguments; no sockets are ever opened.
func networkGroup() []*Command {
	return []*Command{
		{
			Name:        "ping",
			Description: "Ping a host (simulated)",
			Usage:       "ping <host>",
			Category:    "Network",
			Handler: func(ctx *Context, args []string) (Result, error) {
				host := argOr(args, 0, "localhost")
				lines := []string{
					fmt.Sprintf("PING %s (10.0.4.2) 56(84) bytes of data.", host),
				}
				for i := 1; i <= 4; i++ {
					ms := 12 + rand.Intn(20)
					lines = append(lines, fmt.Sprintf(
						"64 bytes from %s (10.0.4.2): icmp_seq=%d ttl=56 time=%d.%d ms",
						host, i, ms, rand.Intn(10)))
				}
				lines = append(lines,
					"",
					fmt.Sprintf("--- %s ping statistics ---", host),
					"4 packets transmitted, 4 received, 0% packet loss, time 3004ms",
				)
				return List(lines...), nil
			},
		},
		{
			Name:        "ifconfig",
			Aliases:     []string{"ip"},
			Description: "Show network interfaces (simulated)",
			Category:    "Network",
			Handler: func(ctx *Context, args []string) (Result, error) {
				return List(
					"eth0: flags=4163<UP,BROADCAST,RUNNING,MULTICAST>  mtu 1500",
					"        inet 10.0.4.2  netmask 255.255.255.0  broadcast 10.0.4.255",
					"        ether de:ad:be:ef:24:01  txqueuelen 1000  (Ethernet)",
					"",
					"lo: flags=73<UP,LOOPBACK,RUNNING>  mtu 65536",
					"        inet 127.0.0.1  netmask 255.0.0.0",
				), nil
			},
		},
		{
			Name:        "netstat",
			Description: "Show network connections (simulated)",
			Category:    "Network",
			Handler: func(ctx *Context, args []string) (Result, error) {
				return List(
					"Active Internet connections (w/o servers)",
					"Proto Recv-Q Send-Q Local Address           Foreign Address         State",
					"tcp        0      0 10.0.4.2:42318          neuos.cloud:https       ESTABLISHED",
					"tcp        0      0 10.0.4.2:51112          particles.local:ws      ESTABLISHED",
				), nil
			},
		},
		{
			Name:        "nslookup",
			Aliases:     []string{"dig"},
			Description: "Resolve a hostname (simulated)",
			Usage:       "nslookup <host>",
			Category:    "Network",
			Handler: func(ctx *Context, args []string) (Result, error) {
				host := argOr(args, 0, "neuos.dev")
				return List(
					"Server:\t\t10.0.4.1",
					"Address:\t10.0.4.1#53",
					"",
					"Non-authoritative answer:",
					"Name:\t"+host,
					"Address: 185.199.108.153",
				), nil
			},
		},
		{
			Name:        "traceroute",
			Description: "Trace the route to a host (simulated)",
			Usage:       "traceroute <host>",
			Category:    "Network",
			Handler: func(ctx *Context, args []string) (Result, error) {
				host := argOr(args, 0, "neuos.dev")
				lines := []string{
					fmt.Sprintf("traceroute to %s (185.199.108.153), 30 hops max, 60 byte packets", host),
					" 1  gateway (10.0.4.1)  0.412 ms  0.388 ms  0.365 ms",
					" 2  core.glass (172.16.0.1)  1.204 ms  1.187 ms  1.166 ms",
				}
				for hop := 3; hop <= 6; hop++ {
					ms := float64(hop*4) + rand.Float64()*3
					lines = append(lines, fmt.Sprintf(" %d  hop-%d.transit.net  %.3f ms", hop, hop, ms))
				}
				lines = append(lines, fmt.Sprintf(" 7  %s (185.199.108.153)  28.114 ms", host))
				return List(lines...), nil
			},
		},
		{
			// Deliberately shadowed by the system group's "ss"; kept so
			// the override order stays exercised and documented.
			Name:        "ss",
			Description: "Show socket statistics (simulated)",
			Category:    "Network",
			Handler: func(ctx *Context, args []string) (Result, error) {
				return List(
					"Netid  State   Recv-Q  Send-Q  Local Address:Port  Peer Address:Port",
					"tcp    ESTAB   0       0       10.0.4.2:42318      185.199.108.153:443",
				), nil
			},
		},
		{
			Name:        "curl",
			Aliases:     []string{"wget"},
			Description: "Fetch a URL (simulated)",
			Usage:       "curl <url>",
			Category:    "Network",
			Handler: func(ctx *Context, args []string) (Result, error) {
				if len(args) == 0 {
					return Failuref("curl: no URL specified"), nil
				}
				url := args[0]
				if !strings.Contains(url, ".") {
					return Failuref("curl: (6) Could not resolve host: %s", url), nil
				}
				return Markup("<b>HTTP/2 200</b>\ncontent-type: text/html\n\n<i>(body omitted - this terminal has no network)</i>"), nil
			},
		},
	}
}
