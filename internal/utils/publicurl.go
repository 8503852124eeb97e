package utils

import "net/url"

// PublicURL maps an object key to a publicly reachable address using the
// configured per-bucket domains. It is a pure string transformation; whether
// the bucket is actually public is the operator's concern.
func PublicURL(domains map[string]string, bucket, key string) (string, bool) {
	domain, ok := domains[bucket]
	if !ok || domain == "" {
		return "", false
	}
	u := url.URL{Scheme: "https", Host: domain, Path: "/" + key}
	return u.String(), true
}
