// Package messages holds the typed records for the supported protocol
// notifications and the default dispatcher over them.
//
// The message shapes live in the embedded declarations.toml, not in code:
// each record struct here must mirror its declaration, and the codec
// compiler verifies the pairing when the dispatcher is built. Notification
// is the closed union the dispatcher produces; consumers type-switch over
// its variants:
//
//	d, err := messages.Dispatcher()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	n, err := d.Dispatch(cmd)
//	if err != nil {
//	    // parameter_not_found, parameter_convert or command_not_found
//	}
//	switch ev := n.(type) {
//	case *messages.TextMessage:
//	    fmt.Println(ev.InvokerName, ev.Message)
//	case *messages.ClientMoved:
//	    // ...
//	}
package messages
