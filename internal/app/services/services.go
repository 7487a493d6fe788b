package services

// Services defined in this package:
// - AuthService: login, token refresh and sign-out
// - PublicationService: publication list and CRUD
// - ResearchService: research project list, search and CRUD
// - TeachingService: courses, materials and file uploads
// - MessageService: contact-form inbox
// - SettingsService: site settings singleton
// - UserService: account management
//
// Every list read goes through the shared query cache; every write
// invalidates the affected cached queries only after it succeeds.
