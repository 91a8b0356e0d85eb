package realtime

import (
	"encoding/json"
	"sync"
)

// CloseReplaced is sent to a socket superseded by a newer one from the same admin.
const CloseReplaced = 4001

// Router tracks live admin sockets and the channels they listen on, e.g. the
// conversation a messaging screen has open. One socket per admin is kept.
type Router struct {
	mu       sync.RWMutex
	conns    map[string]*Connection            // connID -> conn
	byAdmin  map[string]string                 // adminID -> connID
	channels map[string]map[string]*Connection // channel -> connID -> conn
	joined   map[string]map[string]struct{}    // connID -> channels
}

func NewRouter() *Router {
	return &Router{
		conns:    make(map[string]*Connection),
		byAdmin:  make(map[string]string),
		channels: make(map[string]map[string]*Connection),
		joined:   make(map[string]map[string]struct{}),
	}
}

// Attach registers conn and starts its writer. An older socket of the same admin is closed.
func (r *Router) Attach(conn *Connection) {
	var previous *Connection

	r.mu.Lock()
	if id, ok := r.byAdmin[conn.AdminID]; ok {
		previous = r.conns[id]
		r.detachLocked(id)
	}
	r.conns[conn.ID] = conn
	r.byAdmin[conn.AdminID] = conn.ID
	r.joined[conn.ID] = make(map[string]struct{})
	r.mu.Unlock()

	conn.Start()
	if previous != nil {
		previous.Close(CloseReplaced, "session replaced")
	}
}

func (r *Router) Detach(conn *Connection) {
	r.mu.Lock()
	r.detachLocked(conn.ID)
	r.mu.Unlock()
}

// Join subscribes conn to channel. Unknown connections are ignored.
func (r *Router) Join(channel string, conn *Connection) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.conns[conn.ID]; !ok {
		return false
	}
	members := r.channels[channel]
	if members == nil {
		members = make(map[string]*Connection)
		r.channels[channel] = members
	}
	members[conn.ID] = conn
	r.joined[conn.ID][channel] = struct{}{}
	return true
}

func (r *Router) Leave(channel string, conn *Connection) {
	r.mu.Lock()
	r.leaveLocked(channel, conn.ID)
	r.mu.Unlock()
}

// Members reports how many sockets listen on channel.
func (r *Router) Members(channel string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.channels[channel])
}

// Publish encodes frame once and writes it to every socket on channel except
// excludeAdminID's. It returns the number of sockets reached.
func (r *Router) Publish(channel string, frame any, excludeAdminID string) int {
	payload, err := json.Marshal(frame)
	if err != nil {
		return 0
	}
	r.mu.RLock()
	targets := make([]*Connection, 0, len(r.channels[channel]))
	for _, conn := range r.channels[channel] {
		if excludeAdminID != "" && conn.AdminID == excludeAdminID {
			continue
		}
		targets = append(targets, conn)
	}
	r.mu.RUnlock()

	delivered := 0
	for _, conn := range targets {
		if conn.Send(payload) == nil {
			delivered++
		}
	}
	return delivered
}

// Notify writes frame to the admin's socket, reporting whether one was connected.
func (r *Router) Notify(adminID string, frame any) bool {
	r.mu.RLock()
	conn := r.conns[r.byAdmin[adminID]]
	r.mu.RUnlock()
	if conn == nil {
		return false
	}
	return conn.SendJSON(frame) == nil
}

// Online lists the admins with a live socket.
func (r *Router) Online() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.byAdmin))
	for id := range r.byAdmin {
		out = append(out, id)
	}
	return out
}

// Close disconnects everyone.
func (r *Router) Close() {
	r.mu.Lock()
	all := make([]*Connection, 0, len(r.conns))
	for _, conn := range r.conns {
		all = append(all, conn)
	}
	r.conns = make(map[string]*Connection)
	r.byAdmin = make(map[string]string)
	r.channels = make(map[string]map[string]*Connection)
	r.joined = make(map[string]map[string]struct{})
	r.mu.Unlock()

	for _, conn := range all {
		conn.Close(1001, "server shutdown")
	}
}

func (r *Router) detachLocked(connID string) {
	conn, ok := r.conns[connID]
	if !ok {
		return
	}
	delete(r.conns, connID)
	if r.byAdmin[conn.AdminID] == connID {
		delete(r.byAdmin, conn.AdminID)
	}
	for channel := range r.joined[connID] {
		r.leaveLocked(channel, connID)
	}
	delete(r.joined, connID)
}

func (r *Router) leaveLocked(channel, connID string) {
	members := r.channels[channel]
	if members == nil {
		return
	}
	delete(members, connID)
	if len(members) == 0 {
		delete(r.channels, channel)
	}
	if set, ok := r.joined[connID]; ok {
		delete(set, channel)
	}
}
