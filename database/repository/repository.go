package repository

import (
	bookingRepo "chefly/database/repository/booking"
	chefRepo "chefly/database/repository/chef"
	clientRepo "chefly/database/repository/client"
)

// Re-export the ChefRepository interface and constructors.
type ChefRepository = chefRepo.ChefRepository

var NewMongoChefRepo = chefRepo.NewMongoChefRepo
var NewMemoryChefRepo = chefRepo.NewMemoryChefRepo

// Re-export the BookingRepository interface and constructors.
type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo
var NewMemoryBookingRepo = bookingRepo.NewMemoryBookingRepo

// Re-export the ClientRepository interface and constructors.
type ClientRepository = clientRepo.ClientRepository

var NewMongoClientRepo = clientRepo.NewMongoClientRepo
var NewMemoryClientRepo = clientRepo.NewMemoryClientRepo
