package utils

// ContextKeySession is the key used to store the browser session ID in the
// echo context.
const ContextKeySession = "session_id"

// SessionCookieName is the name of the browsing-session cookie. It carries
// only a random session ID, never credentials.
const SessionCookieName = "QuaySession"
