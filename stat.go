package pbs

import (
	"context"
	"fmt"
	"strings"

	"github.com/PelicanPlatform/classad/classad"
	"github.com/openpbs/go-pbs/attr"
	"github.com/openpbs/go-pbs/wire"
)

// statRequest runs one of the batchStatus* request kinds: name selects a
// single object ("" means all objects of class), names restricts which
// attributes come back ("" means every attribute the server will show at
// this connection's visibility level).
func statRequest(ctx context.Context, handle int, command int, class attr.ObjClass, name string, names []string) (attr.BatchStatusList, error) {
	c, err := conn(handle)
	if err != nil {
		return nil, err
	}

	ad := classad.New()
	if name != "" {
		_ = ad.Set("Name", name)
	}
	if len(names) > 0 {
		_ = ad.Set("Projection", strings.Join(names, " "))
	}

	reply, err := wire.RoundTrip(ctx, c, wire.Request{Command: command, Body: ad}, true)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", class, err)
	}
	if err := errorFromReply(reply.Code, reply.Message); err != nil {
		return nil, err
	}

	nameAttr := "Name"
	if class == attr.ClassJob {
		nameAttr = "JobId"
	}
	list, err := attr.DefaultCodec.DecodeBatchStatusList(reply.Ads, nameAttr, names)
	if err != nil {
		return nil, err
	}
	attr.SortBatchStatus(list)
	return list, nil
}

// StatJob returns batch-status entries for jobID ("" for every job visible
// at this connection's level), restricted to the attributes in names (nil
// for all).
func StatJob(ctx context.Context, handle int, jobID string, names []string) (attr.BatchStatusList, error) {
	return statRequest(ctx, handle, batchStatusJob, attr.ClassJob, jobID, names)
}

// StatQueue returns batch-status entries for queue name ("" for all queues).
func StatQueue(ctx context.Context, handle int, name string, names []string) (attr.BatchStatusList, error) {
	return statRequest(ctx, handle, batchStatusQue, attr.ClassQueue, name, names)
}

// StatNode returns batch-status entries for node name ("" for all nodes).
func StatNode(ctx context.Context, handle int, name string, names []string) (attr.BatchStatusList, error) {
	return statRequest(ctx, handle, batchStatusNode, attr.ClassNode, name, names)
}

// StatServer returns the single batch-status entry describing the server
// object itself.
func StatServer(ctx context.Context, handle int, names []string) (attr.BatchStatusList, error) {
	return statRequest(ctx, handle, batchStatusSvr, attr.ClassServer, "", names)
}

// StatSched returns batch-status entries for the named scheduler ("" for
// the default scheduler).
func StatSched(ctx context.Context, handle int, name string, names []string) (attr.BatchStatusList, error) {
	return statRequest(ctx, handle, batchStatusSched, attr.ClassSched, name, names)
}

// StatResv returns batch-status entries for reservation resvID ("" for all
// reservations).
func StatResv(ctx context.Context, handle int, resvID string, names []string) (attr.BatchStatusList, error) {
	return statRequest(ctx, handle, batchStatusResv, attr.ClassResv, resvID, names)
}

// StatHook returns batch-status entries for hook name ("" for all hooks).
func StatHook(ctx context.Context, handle int, name string, names []string) (attr.BatchStatusList, error) {
	return statRequest(ctx, handle, batchStatusHook, attr.ClassHook, name, names)
}

// StatResc returns batch-status entries from the resource sub-catalog
// rather than a live server object; name selects one resource ("" for all).
func StatResc(ctx context.Context, handle int, name string, names []string) (attr.BatchStatusList, error) {
	return statRequest(ctx, handle, batchStatusRsc, attr.ClassResource, name, names)
}
