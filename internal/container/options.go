package container

import "time"

// Options are the server flags. Environment variables with the SERVICE_ prefix
// override them.
type Options struct {
	Port              int    `default:"8888"            help:"Port to listen on"                                      short:"p"`
	RedisAddr         string `default:""                help:"Redis server address, empty keeps everything in process" short:"r"`
	BaseDomain        string `default:"https://sho.rt/" help:"Prefix of generated short links"`
	SlugGenerator     string `default:"base36"          help:"Slug generator: base36 or nanoid"`
	SlugLength        int    `default:"8"               help:"Length of nanoid slugs"`
	SessionTTLMinutes int    `default:"30"              help:"Minutes of inactivity before a session expires"`
	LogFormat         string `default:"console"         help:"Log encoding: console or json"`
	CreateLimit       int    `default:"60"              help:"Session creations allowed per client per minute"`
}

// SessionTTL is the configured session lifetime.
func (o *Options) SessionTTL() time.Duration {
	return time.Duration(o.SessionTTLMinutes) * time.Minute
}

// InProcess reports whether no Redis address was configured.
func (o *Options) InProcess() bool {
	return o.RedisAddr == ""
}
