package handler

import (
	"github.com/sshuster/job-hero-dashboard/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createListingRequest) ports.CreateListingInput {
	return ports.CreateListingInput{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		Status:         req.Status,
		Company:        req.Company,
		Location:       req.Location,
		Salary:         req.Salary,
		JobType:        req.JobType,
		Price:          req.Price,
		Budget:         req.Budget,
		LeadsCount:     req.LeadsCount,
		ResponsesCount: req.ResponsesCount,
		Tags:           req.Tags,
		ImageURL:       req.ImageURL,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
	}
}

func toUpdateInput(req updateListingRequest) ports.UpdateListingInput {
	return ports.UpdateListingInput{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		Status:         req.Status,
		Company:        req.Company,
		Location:       req.Location,
		Salary:         req.Salary,
		JobType:        req.JobType,
		Price:          req.Price,
		Budget:         req.Budget,
		LeadsCount:     req.LeadsCount,
		ResponsesCount: req.ResponsesCount,
		Tags:           req.Tags,
		ImageURL:       req.ImageURL,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
	}
}
