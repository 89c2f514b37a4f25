package siadc09

import (
	"bytes"
	"net"
)

// serveTCP is the acceptor loop: one goroutine per accepted connection,
// each running the per-connection read/frame/dispatch loop until EOF,
// a peer reset, or shutdown. Modeled on the accept-loop-with-circuit-
// breaker shape used throughout this codebase's protocol adapters.
func (c *Client) serveTCP(ln net.Listener) {
	defer c.wg.Done()
	var failCount int
	for {
		select {
		case <-c.closing:
			return
		default:
		}
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-c.closing:
				return
			default:
			}
			failCount++
			if failCount > 3 {
				return
			}
			continue
		}
		failCount = 0
		c.wg.Add(1)
		go c.handleTCPConn(conn)
	}
}

// handleTCPConn implements the READING -> FRAMING -> DISPATCHING state
// machine for one TCP connection: bytes accumulate in a per-connection
// scratch buffer owned exclusively by this goroutine; each time a '\r'
// appears, everything up to it (minus a leading '\n') is one frame.
func (c *Client) handleTCPConn(conn net.Conn) {
	defer c.wg.Done()
	defer conn.Close()

	var buf bytes.Buffer
	chunk := make([]byte, 4096)
	for {
		select {
		case <-c.closing:
			return
		default:
		}

		n, err := conn.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
			c.drainFrames(&buf, func(resp []byte) {
				if len(resp) > 0 {
					conn.Write(resp)
				}
			})
		}
		if err != nil {
			return
		}
	}
}

// drainFrames extracts every complete frame currently in buf, processes
// it through the pure orchestrator, and hands the response bytes to
// write. Responses are written in the exact order frames were received,
// preserving per-connection ordering.
func (c *Client) drainFrames(buf *bytes.Buffer, write func([]byte)) {
	for {
		data := buf.Bytes()
		idx := bytes.IndexByte(data, '\r')
		if idx < 0 {
			return
		}
		frameText := data[:idx]
		if len(frameText) > 0 && frameText[0] == '\n' {
			frameText = frameText[1:]
		}
		line := string(frameText)

		rest := make([]byte, len(data)-idx-1)
		copy(rest, data[idx+1:])
		buf.Reset()
		buf.Write(rest)

		resp, evt := ProcessFrame(c.registry, c.counters, c.now(), line)
		write(resp)
		go c.dispatchAfterFlush(evt)
	}
}

// dispatchAfterFlush runs the user callback off the read loop so a slow
// or misbehaving callback never delays the next frame's
// acknowledgement. time.Sleep(0) would be a no-op; the point is simply
// that this runs in its own goroutine, not on the caller's stack.
func (c *Client) dispatchAfterFlush(evt Event) {
	c.dispatch(evt)
}
