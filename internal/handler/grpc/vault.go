// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/pb"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) Signup(ctx context.Context, in *pb.SignupRequest) (*pb.AuthResponse, error) {
	user, err := h.services.AuthService.RegisterUser(ctx, in.GetName(), in.GetEmail(), in.GetPassword())
	if err != nil {
		return nil, toStatus(err)
	}
	return h.issueToken(ctx, user)
}

func (h *Handler) Login(ctx context.Context, in *pb.LoginRequest) (*pb.AuthResponse, error) {
	user, err := h.services.AuthService.Login(ctx, in.GetEmail(), in.GetPassword())
	if err != nil {
		return nil, toStatus(err)
	}
	return h.issueToken(ctx, user)
}

func (h *Handler) issueToken(ctx context.Context, user models.User) (*pb.AuthResponse, error) {
	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.AuthResponse{Token: token.SignedString, User: userToProto(user)}, nil
}

// ListCredentials returns the caller's records, newest first.
func (h *Handler) ListCredentials(ctx context.Context, _ *pb.ListCredentialsRequest) (*pb.ListCredentialsResponse, error) {
	credentials, err := h.services.CredentialService.List(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	out := make([]*pb.Credential, 0, len(credentials))
	for _, c := range credentials {
		out = append(out, credentialToProto(c))
	}
	return &pb.ListCredentialsResponse{Credentials: out}, nil
}

func (h *Handler) CreateCredential(ctx context.Context, in *pb.CreateCredentialRequest) (*pb.Credential, error) {
	created, err := h.services.CredentialService.Create(ctx, models.CredentialInput{
		Website:  in.GetWebsite(),
		Username: in.GetUsername(),
		Password: in.GetPassword(),
		Notes:    in.GetNotes(),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return credentialToProto(created), nil
}

func (h *Handler) UpdateCredential(ctx context.Context, in *pb.UpdateCredentialRequest) (*pb.Credential, error) {
	updated, err := h.services.CredentialService.Update(ctx, in.GetId(), models.CredentialInput{
		Website:  in.GetWebsite(),
		Username: in.GetUsername(),
		Password: in.GetPassword(),
		Notes:    in.GetNotes(),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return credentialToProto(updated), nil
}

func (h *Handler) DeleteCredential(ctx context.Context, in *pb.DeleteCredentialRequest) (*pb.DeleteCredentialResponse, error) {
	if err := h.services.CredentialService.Delete(ctx, in.GetId()); err != nil {
		return nil, toStatus(err)
	}
	return &pb.DeleteCredentialResponse{Message: app.MsgPasswordDeleted}, nil
}

// userToProto never copies PasswordHash.
func userToProto(u models.User) *pb.User {
	return &pb.User{
		Id:        u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: timestamppb.New(u.CreatedAt),
	}
}

func credentialToProto(c models.Credential) *pb.Credential {
	return &pb.Credential{
		Id:        c.ID,
		Owner:     c.OwnerID,
		Website:   c.Website,
		Username:  c.Username,
		Password:  c.Password,
		Notes:     c.Notes,
		CreatedAt: timestamppb.New(c.CreatedAt),
		UpdatedAt: timestamppb.New(c.UpdatedAt),
	}
}
