// Copyright (c) 2025 The Evonode developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netinfo

import (
	"net"

	"github.com/decred/dcrd/addrmgr/v3"
)

// badPorts is the set of ports that are never acceptable for a published
// endpoint.  It mirrors the list of ports commonly abused for cross-protocol
// attacks and blocked by browsers, plus the ports of well-known non-P2P
// services.
var badPorts = map[uint16]struct{}{
	1:     {}, // tcpmux
	7:     {}, // echo
	9:     {}, // discard
	11:    {}, // systat
	13:    {}, // daytime
	15:    {}, // netstat
	17:    {}, // qotd
	19:    {}, // chargen
	20:    {}, // ftp data
	21:    {}, // ftp access
	22:    {}, // ssh
	23:    {}, // telnet
	25:    {}, // smtp
	37:    {}, // time
	42:    {}, // name
	43:    {}, // nicname
	53:    {}, // dns
	69:    {}, // tftp
	77:    {}, // priv-rjs
	79:    {}, // finger
	87:    {}, // ttylink
	95:    {}, // supdup
	101:   {}, // hostname
	102:   {}, // iso-tsap
	103:   {}, // gppitnp
	104:   {}, // acr-nema
	109:   {}, // pop2
	110:   {}, // pop3
	111:   {}, // sunrpc
	113:   {}, // auth
	115:   {}, // sftp
	117:   {}, // uucp-path
	119:   {}, // nntp
	123:   {}, // ntp
	135:   {}, // loc-srv / epmap
	137:   {}, // netbios
	139:   {}, // netbios
	143:   {}, // imap2
	161:   {}, // snmp
	179:   {}, // bgp
	389:   {}, // ldap
	427:   {}, // slp
	465:   {}, // smtp+ssl
	512:   {}, // print / exec
	513:   {}, // login
	514:   {}, // shell
	515:   {}, // printer
	526:   {}, // tempo
	530:   {}, // courier
	531:   {}, // chat
	532:   {}, // netnews
	540:   {}, // uucp
	548:   {}, // afp
	554:   {}, // rtsp
	556:   {}, // remotefs
	563:   {}, // nntp+ssl
	587:   {}, // smtp (submission)
	601:   {}, // syslog-conn
	636:   {}, // ldap+ssl
	989:   {}, // ftps-data
	990:   {}, // ftps
	993:   {}, // ldap+ssl
	995:   {}, // pop3+ssl
	1719:  {}, // h323gatestat
	1720:  {}, // h323hostcall
	1723:  {}, // pptp
	2049:  {}, // nfs
	3659:  {}, // apple-sasl
	4045:  {}, // lockd
	5060:  {}, // sip
	5061:  {}, // sips
	6000:  {}, // x11
	6566:  {}, // sane-port
	6665:  {}, // irc (alternate)
	6666:  {}, // irc (alternate)
	6667:  {}, // irc (default)
	6668:  {}, // irc (alternate)
	6669:  {}, // irc (alternate)
	6697:  {}, // irc+tls
	10080: {}, // amanda
}

// isBadPort returns whether the port is on the disallowed port list.  Port
// zero is handled separately by the callers since its acceptability is a
// policy decision.
func isBadPort(port uint16) bool {
	_, ok := badPorts[port]
	return ok
}

// isRoutable returns whether the entry is reachable over the public internet.
// Overlay networks carry their reachability in the address itself, so Tor v3
// and I2P entries are always considered routable, matching the behavior of
// the address manager for onion addresses.  IP-based kinds defer to the
// address manager's RFC-range checks.
func isRoutable(entry *AddressEntry) bool {
	switch entry.Type {
	case TorV3Address, I2PAddress:
		return true
	case CJDNSAddress:
		// CJDNS uses fc00::/8 which the generic check treats as a reserved
		// range, so only validity is required.
		return len(entry.Addr) == 16
	}
	return addrmgr.IsRoutable(net.IP(entry.Addr))
}
