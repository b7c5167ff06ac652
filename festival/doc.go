// Package festival provides typed services for the festival management API
// built on top of client.Client.
//
//	cli, _ := client.New(client.WithOrigin("http://localhost:8080"))
//	svc := festival.New(cli)
//	if _, err := svc.Auth.Login(ctx, "alice", "secret"); err != nil {
//		return err
//	}
//	page, err := svc.Festivals.List(ctx, "rock", 0, 10)
package festival
