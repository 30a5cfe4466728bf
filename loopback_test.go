package socketcan

import (
	"bytes"
	"fmt"
	"testing"
)

func TestLoopbackBus_SendReceive_MultiEndpoint(t *testing.T) {
	bus := NewLoopbackBus()
	defer bus.Close()

	a := bus.Open()
	b := bus.Open()
	c := bus.Open()
	defer a.Close()
	defer b.Close()
	defer c.Close()

	send := MustFrame(0x321, []byte("hello"))

	done := make(chan error, 1)
	go func() { done <- a.Send(send) }()

	gotB, err := b.Receive()
	if err != nil {
		t.Fatalf("receive b: %v", err)
	}
	gotC, err := c.Receive()
	if err != nil {
		t.Fatalf("receive c: %v", err)
	}
	if gotB.ID != send.ID || gotB.Len != send.Len || !bytes.Equal(gotB.Data[:gotB.Len], send.Data[:send.Len]) {
		t.Fatalf("b mismatch: got %+v want %+v", gotB, send)
	}
	if gotC.ID != send.ID || gotC.Len != send.Len || !bytes.Equal(gotC.Data[:gotC.Len], send.Data[:send.Len]) {
		t.Fatalf("c mismatch: got %+v want %+v", gotC, send)
	}
	if err := <-done; err != nil {
		t.Fatalf("send: %v", err)
	}
	if gotB.String() != "321 [5] 68 65 6C 6C 6F" {
		t.Fatalf("string: got %q", gotB.String())
	}
}

func TestLoopbackBus_CloseBehavior(t *testing.T) {
	bus := NewLoopbackBus()
	a := bus.Open()
	b := bus.Open()

	// Close endpoint and ensure it errors
	_ = a.Close()
	if _, err := a.Receive(); err == nil {
		t.Fatalf("closed endpoint should error on Receive")
	}
	if err := a.Send(MustFrame(0x1, nil)); err == nil {
		t.Fatalf("closed endpoint should error on Send")
	}

	// Close bus and ensure other endpoint errors after close
	_ = bus.Close()
	if _, err := b.Receive(); err == nil {
		t.Fatalf("endpoint should error after bus close")
	}
	if err := b.Send(MustFrame(0x1, nil)); err == nil {
		t.Fatalf("endpoint should error on Send after bus close")
	}
}

func TestLoopbackBus_SendDuringClose(t *testing.T) {
	// A sender holding a peer snapshot must not trip over that peer
	// closing mid-delivery.
	for i := 0; i < 200; i++ {
		bus := NewLoopbackBus()
		a := bus.Open()
		b := bus.Open()

		frame := MustFrame(0x7FF, []byte{0xFF})
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if err := a.Send(frame); err != nil {
					return
				}
			}
		}()

		_ = b.Close()
		_ = bus.Close()
		<-done
	}
}

func ExampleLoopbackBus() {
	bus := NewLoopbackBus()
	a := bus.Open()
	b := bus.Open()
	defer a.Close()
	defer b.Close()

	go func() { _ = a.Send(MustFrame(0x123, []byte("hi"))) }()
	f, _ := b.Receive()
	fmt.Printf("ID=%03X LEN=%d DATA=%x\n", f.ID, f.Len, f.Data[:f.Len])
	// Output: ID=123 LEN=2 DATA=6869
}
