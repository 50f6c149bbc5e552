package config

import (
	"sync"
)

// SiteConfig holds institute-wide display settings. There is exactly one instance
// per process; it is loaded at startup and can be reloaded at runtime through the
// admin API without a restart.
type SiteConfig struct {
	SiteName          string
	CertificatePrefix string
	Logo              string
	HeroBackground    string
	WhatsappNumber    string
	FacebookURL       string
	ContactPhone      string
}

var (
	siteMu sync.RWMutex
	site   *SiteConfig
)

// LoadSiteConfig reads the site configuration from the environment.
func LoadSiteConfig() {
	cfg := &SiteConfig{
		SiteName:          getEnv("SITE_NAME", "Premier Medical And Technical Institute"),
		CertificatePrefix: getEnv("CERTIFICATE_PREFIX", "NCC"),
		Logo:              getEnv("SITE_LOGO", ""),
		HeroBackground:    getEnv("SITE_HERO_BACKGROUND", ""),
		WhatsappNumber:    getEnv("SITE_WHATSAPP_NUMBER", ""),
		FacebookURL:       getEnv("SITE_FACEBOOK_URL", ""),
		ContactPhone:      getEnv("SITE_CONTACT_PHONE", ""),
	}

	siteMu.Lock()
	site = cfg
	siteMu.Unlock()
}

// ReloadSiteConfig re-reads the site configuration. Alias kept separate so the
// admin handler reads naturally.
func ReloadSiteConfig() {
	LoadSiteConfig()
}

// Site returns the current site configuration snapshot.
func Site() SiteConfig {
	siteMu.RLock()
	defer siteMu.RUnlock()
	if site == nil {
		return SiteConfig{SiteName: "Premier Medical And Technical Institute", CertificatePrefix: "NCC"}
	}
	return *site
}
