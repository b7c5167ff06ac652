// Package cli implements the apiclient command:
//
//	apiclient -u http://localhost:8080 --token $TOKEN
//	apiclient -u http://localhost:8080 -p active=true -p role=admin -p role=editor users
//	apiclient -u http://localhost:8080 -X POST -d '{"name":"Rockwave"}' festivals
//	apiclient --logout
package cli
